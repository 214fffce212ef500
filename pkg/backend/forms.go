package backend

import (
	"context"
	"net/url"
)

// FormConfigs lists the intake form configurations for a bot.
func (c *Client) FormConfigs(ctx context.Context, botID string) ([]FormConfig, error) {
	var configs []FormConfig
	if err := c.get(ctx, "/api/form-configs?bot_id="+url.QueryEscape(botID), &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// SaveFormConfig creates or updates a form configuration. New configs (empty
// id) are POSTed; existing ones are PUT in place.
func (c *Client) SaveFormConfig(ctx context.Context, cfg FormConfig) (FormConfig, error) {
	var saved FormConfig
	if cfg.ID == "" {
		if err := c.post(ctx, "/api/form-configs", cfg, &saved); err != nil {
			return FormConfig{}, err
		}
		return saved, nil
	}
	if err := c.put(ctx, "/api/form-configs/"+url.PathEscape(cfg.ID), cfg, &saved); err != nil {
		return FormConfig{}, err
	}
	return saved, nil
}

// UpdateFormField updates one field definition in place.
func (c *Client) UpdateFormField(ctx context.Context, field FormField) error {
	return c.put(ctx, "/api/form-fields/"+url.PathEscape(field.ID), field, nil)
}

// FormTemplates lists the reusable form templates.
func (c *Client) FormTemplates(ctx context.Context) ([]FormTemplate, error) {
	var templates []FormTemplate
	if err := c.get(ctx, "/api/form-templates", &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

// Resources lists the bookable resources for a bot.
func (c *Client) Resources(ctx context.Context, botID string) ([]Resource, error) {
	var resources []Resource
	if err := c.get(ctx, "/api/resources?bot_id="+url.QueryEscape(botID), &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// CreateResource registers a new bookable resource.
func (c *Client) CreateResource(ctx context.Context, res Resource) (Resource, error) {
	var saved Resource
	if err := c.post(ctx, "/api/resources", res, &saved); err != nil {
		return Resource{}, err
	}
	return saved, nil
}

// UpdateResource updates a resource in place.
func (c *Client) UpdateResource(ctx context.Context, res Resource) error {
	return c.put(ctx, "/api/resources/"+url.PathEscape(res.ID), res, nil)
}

// DeleteResource removes a resource and its schedules.
func (c *Client) DeleteResource(ctx context.Context, resourceID string) error {
	return c.delete(ctx, "/api/resources/"+url.PathEscape(resourceID))
}

// UpdateSchedule updates one availability window.
func (c *Client) UpdateSchedule(ctx context.Context, sched Schedule) error {
	return c.put(ctx, "/api/schedules/"+url.PathEscape(sched.ID), sched, nil)
}
