package embed

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Builder renders one snippet variant to a static, copy-pasteable string.
// Builders are pure functions of their config; no runtime templating engine
// is involved so the output can be pasted into any host page.
type Builder func(SnippetConfig) string

// BuilderFor returns the builder for a variant, or nil for unknown layouts.
func BuilderFor(v Variant) Builder {
	switch v {
	case VariantBubbleLight:
		return BuildBubbleLight
	case VariantBubbleDark:
		return BuildBubbleDark
	case VariantIframe:
		return BuildIframe
	case VariantScript:
		return BuildScript
	case VariantCard:
		return BuildCard
	case VariantFullscreen:
		return BuildFullscreen
	}
	return nil
}

// safeColor falls back to a neutral when the value does not parse, so a bad
// form input can never break out of a CSS value position.
func safeColor(s, fallback string) string {
	c, err := ParseHex(s)
	if err != nil {
		return fallback
	}
	return c.Hex()
}

// jsString renders s as a double-quoted JS string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// position yields the launcher corner rule.
func position(t Theme) string {
	if t.PositionRight {
		return "right:24px"
	}
	return "left:24px"
}

// chatScript is the streaming chat driver shared by every variant that
// embeds the widget inline. It reads the SSE-style body line by line,
// appending each data chunk until the [DONE] marker.
func chatScript(cfg SnippetConfig, rootID string) string {
	return fmt.Sprintf(`<script>
(function(){
  var root=document.getElementById(%s);
  var log=root.querySelector(".ca-log"),input=root.querySelector(".ca-input"),form=root.querySelector(".ca-form");
  function bubble(text,mine){
    var div=document.createElement("div");
    div.className=mine?"ca-msg ca-mine":"ca-msg";
    div.textContent=text;log.appendChild(div);log.scrollTop=log.scrollHeight;return div;
  }
  form.addEventListener("submit",function(ev){
    ev.preventDefault();
    var msg=input.value.trim();if(!msg)return;
    bubble(msg,true);input.value="";
    var reply=bubble("",false);
    fetch(%s+"/api/chat/stream/"+%s,{
      method:"POST",
      headers:{"Content-Type":"application/json","X-Bot-Key":%s},
      body:JSON.stringify({message:msg})
    }).then(function(res){
      var reader=res.body.getReader(),dec=new TextDecoder(),buf="";
      function pump(){return reader.read().then(function(r){
        if(r.done)return;
        buf+=dec.decode(r.value,{stream:true});
        var lines=buf.split("\n");buf=lines.pop();
        for(var i=0;i<lines.length;i++){
          var line=lines[i];
          if(line.indexOf("data: ")!==0)continue;
          var chunk=line.slice(6);
          if(chunk==="[DONE]")return;
          reply.textContent+=chunk;log.scrollTop=log.scrollHeight;
        }
        return pump();
      });}
      return pump();
    }).catch(function(){reply.textContent="Something went wrong. Please try again.";});
  });
})();
</script>`,
		jsString(rootID),
		jsString(strings.TrimRight(cfg.BackendURL, "/")),
		jsString(cfg.BotID),
		jsString(cfg.PublicKey))
}

// panelMarkup is the chat panel shared by the bubble, card, and fullscreen
// variants.
func panelMarkup(cfg SnippetConfig, fg, bg, primary string) string {
	t := cfg.Theme
	return fmt.Sprintf(`<div class="ca-panel" style="background:%s;color:%s;border-radius:%dpx;display:flex;flex-direction:column;overflow:hidden;font-family:system-ui,sans-serif">
  <div class="ca-head" style="background:%s;color:#fff;padding:12px 16px;font-weight:600">%s</div>
  <div class="ca-log" style="flex:1;overflow-y:auto;padding:12px"><div class="ca-msg">%s</div></div>
  <form class="ca-form" style="display:flex;border-top:1px solid rgba(0,0,0,.08)">
    <input class="ca-input" style="flex:1;border:0;padding:12px;background:transparent;color:inherit" placeholder="Type a message..." />
    <button type="submit" style="border:0;background:%s;color:#fff;padding:0 16px;cursor:pointer">Send</button>
  </form>
</div>`,
		bg, fg, t.CornerRadius, primary,
		html.EscapeString("Chat"),
		html.EscapeString(t.Greeting),
		primary)
}

// BuildBubbleLight renders the floating launcher variant on a light panel.
func BuildBubbleLight(cfg SnippetConfig) string {
	return buildBubble(cfg, safeColor(cfg.Theme.Background, "#ffffff"), safeColor(cfg.Theme.TextColor, "#111827"))
}

// BuildBubbleDark renders the floating launcher variant on a dark panel.
func BuildBubbleDark(cfg SnippetConfig) string {
	return buildBubble(cfg, "#1f2937", "#f9fafb")
}

func buildBubble(cfg SnippetConfig, bg, fg string) string {
	t := cfg.Theme
	primary := safeColor(t.PrimaryColor, "#4f46e5")
	rootID := "ca-widget-" + cfg.BotID
	return fmt.Sprintf(`<!-- chat widget -->
<div id=%q>
  <button class="ca-launcher" style="position:fixed;bottom:24px;%s;width:%dpx;height:%dpx;border-radius:50%%;border:0;background:%s;color:#fff;font-size:24px;cursor:pointer;z-index:9999">%s</button>
  <div class="ca-holder" style="position:fixed;bottom:%dpx;%s;width:%dpx;height:%dpx;display:none;z-index:9999;box-shadow:0 8px 30px rgba(0,0,0,.2)">
%s
  </div>
</div>
<script>
(function(){
  var root=document.getElementById(%s);
  var holder=root.querySelector(".ca-holder");
  root.querySelector(".ca-launcher").addEventListener("click",function(){
    holder.style.display=holder.style.display==="none"?"block":"none";
  });
})();
</script>
%s`,
		rootID,
		position(t), t.LauncherPixels, t.LauncherPixels, primary, html.EscapeString(t.BubbleIcon),
		t.LauncherPixels+36, position(t), t.WidthPixels, t.HeightPixels,
		panelMarkup(cfg, fg, bg, primary),
		jsString(rootID),
		chatScript(cfg, rootID))
}

// BuildIframe renders an inline iframe pointed at the hosted widget page.
func BuildIframe(cfg SnippetConfig) string {
	t := cfg.Theme
	src := fmt.Sprintf("%s/widget/%s?key=%s",
		strings.TrimRight(cfg.BackendURL, "/"), cfg.BotID, cfg.PublicKey)
	return fmt.Sprintf(`<iframe src=%q width="%d" height="%d" style="border:0;border-radius:%dpx" title="Chat widget"></iframe>`,
		src, t.WidthPixels, t.HeightPixels, t.CornerRadius)
}

// BuildScript renders the one-line CDN loader tag.
func BuildScript(cfg SnippetConfig) string {
	return fmt.Sprintf(`<script src="%s/widget.js" data-bot-id=%q data-bot-key=%q data-primary-color=%q async></script>`,
		strings.TrimRight(cfg.BackendURL, "/"), cfg.BotID, cfg.PublicKey,
		safeColor(cfg.Theme.PrimaryColor, "#4f46e5"))
}

// BuildCard renders the widget as an inline card flowing with page content.
func BuildCard(cfg SnippetConfig) string {
	t := cfg.Theme
	primary := safeColor(t.PrimaryColor, "#4f46e5")
	rootID := "ca-card-" + cfg.BotID
	return fmt.Sprintf(`<div id=%q style="width:%dpx;height:%dpx">
%s
</div>
%s`,
		rootID, t.WidthPixels, t.HeightPixels,
		panelMarkup(cfg, safeColor(t.TextColor, "#111827"), safeColor(t.Background, "#ffffff"), primary),
		chatScript(cfg, rootID))
}

// BuildFullscreen renders the widget pinned over the whole viewport.
func BuildFullscreen(cfg SnippetConfig) string {
	t := cfg.Theme
	primary := safeColor(t.PrimaryColor, "#4f46e5")
	rootID := "ca-full-" + cfg.BotID
	return fmt.Sprintf(`<div id=%q style="position:fixed;inset:0;z-index:9999">
%s
</div>
%s`,
		rootID,
		panelMarkup(cfg, safeColor(t.TextColor, "#111827"), safeColor(t.Background, "#ffffff"), primary),
		chatScript(cfg, rootID))
}
