package backend

import (
	"context"
	"io"
	"net/url"
)

// IngestText submits raw text to the bot's knowledge base and returns the job
// tracking the embedding run.
func (c *Client) IngestText(ctx context.Context, botID, text string) (IngestJob, error) {
	payload := map[string]string{"text": text}
	var job IngestJob
	if err := c.post(ctx, "/api/ingest/"+url.PathEscape(botID), payload, &job); err != nil {
		return IngestJob{}, err
	}
	return job, nil
}

// IngestQA submits question/answer pairs to the bot's knowledge base.
func (c *Client) IngestQA(ctx context.Context, botID string, pairs []QAPair) (IngestJob, error) {
	payload := map[string][]QAPair{"pairs": pairs}
	var job IngestJob
	if err := c.post(ctx, "/api/ingest/"+url.PathEscape(botID), payload, &job); err != nil {
		return IngestJob{}, err
	}
	return job, nil
}

// IngestURL asks the backend to crawl and ingest a page.
func (c *Client) IngestURL(ctx context.Context, botID, pageURL string) (IngestJob, error) {
	payload := map[string]string{"url": pageURL}
	var job IngestJob
	if err := c.post(ctx, "/api/ingest/url/"+url.PathEscape(botID), payload, &job); err != nil {
		return IngestJob{}, err
	}
	return job, nil
}

// IngestPDF uploads a PDF document for ingestion.
func (c *Client) IngestPDF(ctx context.Context, botID, fileName string, file io.Reader) (IngestJob, error) {
	var job IngestJob
	err := c.postMultipart(ctx, "/api/ingest/pdf/"+url.PathEscape(botID), "file", fileName, file, nil, &job)
	if err != nil {
		return IngestJob{}, err
	}
	return job, nil
}

// ClearKnowledge drops the bot's entire knowledge base.
func (c *Client) ClearKnowledge(ctx context.Context, botID string) error {
	return c.post(ctx, "/api/ingest/clear/"+url.PathEscape(botID), nil, nil)
}

// IngestJobStatus fetches the current state of an ingestion job.
func (c *Client) IngestJobStatus(ctx context.Context, jobID string) (IngestJob, error) {
	var job IngestJob
	if err := c.get(ctx, "/api/ingest/jobs/status/"+url.PathEscape(jobID), &job); err != nil {
		return IngestJob{}, err
	}
	return job, nil
}
