package export

import (
	"github.com/piwi3910/PanelCut/internal/engine"
	"github.com/piwi3910/PanelCut/internal/model"
)

// hipJob is a 120" start cut against a 6/12 hip moving up from the eave.
func hipJob() (model.Job, model.GeometryResult, model.PanelOutline) {
	spec := model.DefaultPanelSpec()
	spec.StartLength = 120
	spec.Top = model.HipMovingUp
	return computeJob("Garage North", spec)
}

// sameDirectionJob runs valley and hip both moving up, which adds a RUN column.
func sameDirectionJob() (model.Job, model.GeometryResult, model.PanelOutline) {
	spec := model.DefaultPanelSpec()
	spec.StartLength = 120
	spec.Top = model.HipMovingUp
	spec.Bottom = model.ValleyMovingUp
	spec.Direction = model.RightToLeft
	return computeJob("Dormer", spec)
}

func computeJob(name string, spec model.PanelSpec) (model.Job, model.GeometryResult, model.PanelOutline) {
	job := model.NewJob(name, spec)
	result := engine.Compute(spec)
	return job, result, engine.OutlineFor(spec, result)
}
