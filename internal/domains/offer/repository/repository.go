package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"net/http"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/internal/dashboard"
	"salondash/internal/domains/offer/model"
	"salondash/shared/constant"
	gDto "salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/logger"
	gRepo "salondash/shared/repository"
	"strings"
)

// categoryNameKeys are the fields a category object may carry its name under.
var categoryNameKeys = []string{"name", "category", "label"}

type Offer interface {
	List(ctx context.Context, params gDto.QueryParams, filters gDto.Filters) (gRepo.Page[model.Offer], error)
	Get(ctx context.Context, id string) (model.Offer, error)
	Create(ctx context.Context, body any) (*model.Offer, error)
	Update(ctx context.Context, id string, body any) (*model.Offer, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (dashboard.Stats, error)
	Categories(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Offer]
	otel otel.Otel
}

func New(client ownerapi.Client, otel otel.Otel) Offer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Offer](model.EntityName, model.Path, []string{model.PayloadKeyList}, model.PayloadKey, client, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Stats(ctx context.Context) (res dashboard.Stats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".offer.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := r.Call(ctx, ownerapi.Request{Method: http.MethodGet, Path: r.Path(model.SegmentStats, model.SegmentSummary)})
	if err != nil {
		return nil, err
	}

	res, err = dashboard.StatsFromPayload(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, failure.BadGateway("unexpected offer stats shape") //nolint:wrapcheck
	}

	return res, nil
}

// Categories returns the category names in backend order. Entries may be plain strings or
// objects carrying a name.
func (r *repositoryImpl) Categories(ctx context.Context) ([]string, error) {
	var raw []any
	if err := r.Fetch(ctx, nil, &raw, model.PayloadKeyCategories, model.SegmentCategories); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if name := strings.TrimSpace(categoryName(entry)); name != "" {
			out = append(out, name)
		}
	}

	return out, nil
}

func categoryName(entry any) string {
	switch v := entry.(type) {
	case string:
		return v
	case map[string]any:
		for _, key := range categoryNameKeys {
			if s, ok := v[key].(string); ok && s != "" {
				return s
			}
		}
	}

	return ""
}
