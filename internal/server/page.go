package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"github.com/yildizm/LaunchDash/internal/layout"
	"github.com/yildizm/LaunchDash/internal/logger"
)

// graphSlot is one rendered output placeholder
type graphSlot struct {
	ID     string
	Inputs string // space separated input widget ids
}

type pageData struct {
	Layout  layout.Layout
	Format  string
	Pie     graphSlot
	Scatter graphSlot
}

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Layout.Title.Text}}</title>
<style>
body{margin:0;font:14px/1.4 ui-sans-serif,system-ui,sans-serif;background:#f4f6f8;color:#1f2937}
h1{margin:16px 0}
.wrap{max-width:960px;margin:0 auto;padding:0 16px 32px}
.section{background:#fff;border:1px solid #dbe1e8;border-radius:10px;padding:12px 14px;margin:12px 0}
.figure{display:block;max-width:100%;margin:0 auto}
select{width:100%;padding:8px 10px;border:1px solid #cbd5e1;border-radius:8px}
.slider{display:grid;grid-template-columns:1fr 1fr;gap:12px}
.slider input{width:100%}
.marks{display:flex;justify-content:space-between;color:#64748b;font-size:12px}
.muted{color:#64748b}
</style></head>
<body><div class="wrap">
<h1 style="text-align:{{.Layout.Title.Style.TextAlign}};color:{{.Layout.Title.Style.Color}};font-size:{{.Layout.Title.Style.FontSize}}px">{{.Layout.Title.Text}}</h1>

<div class="section">
<select id="{{.Layout.SiteDropdown.ID}}" class="input" title="{{.Layout.SiteDropdown.Placeholder}}">
{{- $site := .Layout.SiteDropdown.Value}}
{{- range .Layout.SiteDropdown.Options}}
<option value="{{.Value}}"{{if eq .Value $site}} selected{{end}}>{{.Label}}</option>
{{- end}}
</select>
</div>

<div class="section">
<img id="{{.Pie.ID}}" class="figure" data-inputs="{{.Pie.Inputs}}" alt="{{.Pie.ID}}">
</div>

<div class="section">
<p>{{.Layout.PayloadLabel}} <span id="payload-value" class="muted"></span></p>
{{- $slider := .Layout.PayloadSlider}}
<div class="slider" id="{{$slider.ID}}">
<input type="range" id="{{$slider.ID}}-low" class="input" min="{{$slider.Min}}" max="{{$slider.Max}}" step="{{$slider.Step}}" value="{{$slider.Value.Low}}" data-value="{{$slider.Value.Low}}">
<input type="range" id="{{$slider.ID}}-high" class="input" min="{{$slider.Min}}" max="{{$slider.Max}}" step="{{$slider.Step}}" value="{{$slider.Value.High}}" data-value="{{$slider.Value.High}}">
</div>
<div class="marks">{{range $slider.Marks}}<span>{{.Label}}</span>{{end}}</div>
</div>

<div class="section">
<img id="{{.Scatter.ID}}" class="figure" data-inputs="{{.Scatter.Inputs}}" alt="{{.Scatter.ID}}">
</div>
</div>

<script>
(function(){
  const format = {{.Format}};
  const site = document.getElementById({{.Layout.SiteDropdown.ID}});
  const low = document.getElementById({{$slider.ID}} + "-low");
  const high = document.getElementById({{$slider.ID}} + "-high");
  const label = document.getElementById("payload-value");
  // the initial value follows the data and may lie outside the slider domain
  const state = {low: Number(low.dataset.value), high: Number(high.dataset.value)};

  function query() {
    const q = new URLSearchParams({site: site.value, low: state.low, high: state.high});
    return q.toString();
  }

  function refresh(changed) {
    label.textContent = state.low + " - " + state.high;
    document.querySelectorAll("img[data-inputs]").forEach(function(img) {
      if (changed && img.dataset.inputs.split(" ").indexOf(changed) < 0) {
        return;
      }
      img.src = "/figures/" + img.id + "." + format + "?" + query();
    });
  }

  site.addEventListener("change", function() { refresh(site.id); });
  [low, high].forEach(function(input) {
    input.addEventListener("input", function() {
      let a = Number(low.value), b = Number(high.value);
      if (a > b) {
        if (input === low) { b = a; high.value = b; } else { a = b; low.value = a; }
      }
      state.low = a;
      state.high = b;
      refresh({{$slider.ID}});
    });
  });

  refresh("");
})();
</script>
</body></html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Layout: s.layout,
		Format: string(s.format),
	}
	if cb, ok := s.callbacks.Lookup(layout.PieGraphID); ok {
		data.Pie = graphSlot{ID: cb.Output, Inputs: strings.Join(cb.Inputs, " ")}
	}
	if cb, ok := s.callbacks.Lookup(layout.ScatterGraphID); ok {
		data.Scatter = graphSlot{ID: cb.Output, Inputs: strings.Join(cb.Inputs, " ")}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.ErrorWithFields("Failed to render dashboard page", []logger.Field{logger.Error(err)})
		s.writeJSONError(w, http.StatusInternalServerError, "failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
