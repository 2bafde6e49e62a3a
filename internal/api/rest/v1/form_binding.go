package v1

import (
	"github.com/MGTheTrain/specfem-web/internal/domain/simulations"
	"github.com/MGTheTrain/specfem-web/internal/domain/users"
	"github.com/MGTheTrain/specfem-web/internal/pkg/forms"
	"github.com/MGTheTrain/specfem-web/internal/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// postedValues returns the url-encoded body of a form post
func postedValues(ctx *gin.Context) (map[string]string, error) {
	if err := ctx.Request.ParseForm(); err != nil {
		return nil, err
	}
	return httputil.FirstValues(ctx.Request.PostForm), nil
}

// decodeSubmission splits a flat simulation form into its three parts and
// decodes each one. Conversion failures are keyed by the submitted name.
func decodeSubmission(values map[string]string) (*simulations.Submission, forms.Errors) {
	submission := &simulations.Submission{}
	errs := forms.Errors{}

	parts, err := simulations.SubmissionNamespace.Split(values)
	if err != nil {
		errs.Add("", err.Error())
		return submission, errs
	}

	errs.Merge(forms.Decode(parts[simulations.MeshPrefix], &submission.Mesh).Prefixed(simulations.MeshPrefix))
	errs.Merge(forms.Decode(parts[simulations.ModelPrefix], &submission.Model).Prefixed(simulations.ModelPrefix))
	errs.Merge(forms.Decode(parts[simulations.SimulationPrefix], &submission.Simulation).Prefixed(simulations.SimulationPrefix))
	return submission, errs
}

// decodeRegistration splits a registration form into account and profile
func decodeRegistration(values map[string]string) (*users.Registration, forms.Errors) {
	registration := &users.Registration{}
	errs := forms.Errors{}

	parts, err := users.RegistrationNamespace.Split(values)
	if err != nil {
		errs.Add("", err.Error())
		return registration, errs
	}

	errs.Merge(forms.Decode(parts[users.AccountPrefix], &registration.Account).Prefixed(users.AccountPrefix))
	errs.Merge(forms.Decode(parts[users.ProfilePrefix], &registration.Profile).Prefixed(users.ProfilePrefix))
	return registration, errs
}
