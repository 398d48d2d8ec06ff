package workflow

import (
	"context"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

type materialAPI interface {
	Materials(ctx context.Context, courseID string) ([]models.Material, error)
	CreateMaterial(ctx context.Context, courseID string, draft models.MaterialDraft) (*models.Material, error)
	UpdateMaterial(ctx context.Context, materialID string, draft models.MaterialDraft) (*models.Material, error)
	DeleteMaterial(ctx context.Context, materialID string) error
}

type MaterialView interface {
	RenderMaterials(materials []models.Material)
}

// MaterialFlow manages the materials of one course; the course id is
// fixed when the course screen opens, like a page-level parameter.
type MaterialFlow struct {
	api      materialAPI
	view     MaterialView
	confirm  Prompter
	courseID string
	editor   editor
}

func NewMaterialFlow(api materialAPI, view MaterialView, confirm Prompter, courseID string) *MaterialFlow {
	return &MaterialFlow{api: api, view: view, confirm: confirm, courseID: courseID}
}

func (f *MaterialFlow) List(ctx context.Context) error {
	materials, err := f.api.Materials(ctx, f.courseID)
	if err != nil {
		return err
	}
	f.view.RenderMaterials(materials)
	return nil
}

func (f *MaterialFlow) StartCreate() *models.MaterialDraft {
	f.editor.startCompose("")
	return &models.MaterialDraft{OrderNumber: 1}
}

// StartEdit finds the record in a fresh list; there is no per-material
// fetch endpoint, so editing always re-derives from the list. A missing
// id silently aborts the edit.
func (f *MaterialFlow) StartEdit(ctx context.Context, materialID string) (*models.MaterialDraft, error) {
	materials, err := f.api.Materials(ctx, f.courseID)
	if err != nil {
		return nil, err
	}

	for _, m := range materials {
		if m.ID == materialID {
			f.editor.startCompose(materialID)
			return &models.MaterialDraft{
				Title:       m.Title,
				Content:     m.Content,
				FileURL:     m.FileURL,
				OrderNumber: m.OrderNumber,
			}, nil
		}
	}
	return nil, nil
}

func (f *MaterialFlow) Cancel() {
	f.editor.cancel()
}

func (f *MaterialFlow) Submit(ctx context.Context, draft models.MaterialDraft) error {
	if err := draft.Validate(); err != nil {
		return err
	}

	gen, err := f.editor.beginSubmit()
	if err != nil {
		return err
	}

	if target := f.editor.editing(); target == "" {
		_, err = f.api.CreateMaterial(ctx, f.courseID, draft)
	} else {
		_, err = f.api.UpdateMaterial(ctx, target, draft)
	}

	if !f.editor.isCurrent(gen) {
		return nil
	}
	if err != nil {
		f.editor.failSubmit()
		return err
	}

	f.editor.finishSubmit()
	return f.List(ctx)
}

func (f *MaterialFlow) Remove(ctx context.Context, materialID string) error {
	if !f.confirm.Confirm("Delete this material?") {
		return nil
	}

	if err := f.api.DeleteMaterial(ctx, materialID); err != nil {
		return err
	}
	return f.List(ctx)
}
