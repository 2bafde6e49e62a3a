package rendering

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/MGTheTrain/specfem-web/internal/domain/seismo"
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
)

//go:embed templates
var templateFS embed.FS

const (
	parametersTemplate = "parameters.xml.tmpl"
	eventsTemplate     = "events.txt.tmpl"
	stationsTemplate   = "stations.txt.tmpl"
)

var reportFuncs = template.FuncMap{
	"xml":            escapeXML,
	"pybool":         pythonBool,
	"meshType":       func(t simulations.MeshType) string { return t.String() },
	"simulationType": simulationTypeName,
}

type templateReportRenderer struct {
	templates *template.Template
}

// NewReportRenderer parses the embedded report templates
func NewReportRenderer() (simulations.ReportRenderer, error) {
	templates, err := template.New("reports").Funcs(reportFuncs).ParseFS(templateFS, "templates/reports/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}
	return &templateReportRenderer{templates: templates}, nil
}

// RenderParameters writes the parameter inventory; Mesh and Model must be resolved
func (r *templateReportRenderer) RenderParameters(w io.Writer, sim *simulations.Simulation) error {
	if sim.Mesh == nil || sim.Model == nil {
		return fmt.Errorf("simulation %s has no resolved mesh or model", sim.ID)
	}
	return r.execute(w, parametersTemplate, sim)
}

func (r *templateReportRenderer) RenderEvents(w io.Writer, events []*seismo.Event) error {
	return r.execute(w, eventsTemplate, events)
}

func (r *templateReportRenderer) RenderStations(w io.Writer, stations []*seismo.Station) error {
	return r.execute(w, stationsTemplate, stations)
}

// execute renders into a buffer so a failing template writes nothing
func (r *templateReportRenderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func escapeXML(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func simulationTypeName(t simulations.SimulationType) string {
	switch t {
	case simulations.SimulationTypeForward:
		return "forward"
	case simulations.SimulationTypeAdjoint:
		return "adjoint"
	case simulations.SimulationTypeBothKernel:
		return "both"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}
