package gateway

import (
	"context"
	"net/http"

	"github.com/shrimpsizemoose/kateder/internal/models"
)

func (g *Gateway) Materials(ctx context.Context, courseID string) ([]models.Material, error) {
	var materials []models.Material
	if err := g.call(ctx, "materials", http.MethodGet, "/materials/courses/"+courseID+"/materials", nil, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (g *Gateway) CreateMaterial(ctx context.Context, courseID string, draft models.MaterialDraft) (*models.Material, error) {
	var material models.Material
	if err := g.call(ctx, "materials", http.MethodPost, "/materials/courses/"+courseID+"/materials", draft, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (g *Gateway) UpdateMaterial(ctx context.Context, materialID string, draft models.MaterialDraft) (*models.Material, error) {
	var material models.Material
	if err := g.call(ctx, "materials", http.MethodPut, "/materials/"+materialID, draft, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

func (g *Gateway) DeleteMaterial(ctx context.Context, materialID string) error {
	return g.call(ctx, "materials", http.MethodDelete, "/materials/"+materialID, nil, nil)
}
