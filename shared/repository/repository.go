package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"salondash/infras/otel"
	"salondash/infras/ownerapi"
	"salondash/shared/constant"
	"salondash/shared/dto"
	"salondash/shared/failure"
	"salondash/shared/logger"
	"strconv"
)

const (
	otelPathAttributeKey = "resource.path"
	paginationKey        = "pagination"
)

// Page is one page of a collection together with the pagination the backend reported.
type Page[T any] struct {
	Items      []T
	Pagination dto.Pagination
}

// Payload is the decoded envelope, keyed by top-level field.
type Payload map[string]json.RawMessage

// Decode unmarshals the first present key into out and reports whether one was found.
func (p Payload) Decode(out any, keys ...string) (bool, error) {
	for _, key := range keys {
		raw, ok := p[key]
		if !ok || string(raw) == "null" {
			continue
		}

		if err := json.Unmarshal(raw, out); err != nil {
			return false, fmt.Errorf("failed to decode %q: %w", key, err)
		}

		return true, nil
	}

	return false, nil
}

// Repository is a REST collection on the salon backend rooted at one path.
type Repository[T any] struct {
	client   ownerapi.Client
	otel     otel.Otel
	entitas  string
	path     string
	plural   []string
	singular string
}

// NewRepository binds a collection path. plural lists the payload keys a list response may use,
// most specific first; singular is the key of one entity.
func NewRepository[T any](entitasName, path string, plural []string, singular string, client ownerapi.Client, otl otel.Otel) Repository[T] {
	return Repository[T]{
		client:   client,
		otel:     otl,
		entitas:  entitasName,
		path:     path,
		plural:   plural,
		singular: singular,
	}
}

func (repo *Repository[T]) Path(segments ...string) string {
	p := repo.path
	for _, seg := range segments {
		p += "/" + url.PathEscape(seg)
	}

	return p
}

// Call sends one request and returns the decoded envelope.
func (repo *Repository[T]) Call(ctx context.Context, req ownerapi.Request) (Payload, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Call", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	scope.SetAttribute(otelPathAttributeKey, req.Path)

	payload := Payload{}
	if err := repo.client.Do(ctx, req, &payload); err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("%s %s (%s): %w", req.Method, req.Path, repo.entitas, err)
	}

	return payload, nil
}

func (repo *Repository[T]) List(ctx context.Context, params dto.QueryParams, filters dto.Filters) (res Page[T], err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.List", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := url.Values{}
	filters.Encode(query)

	if params.Page > 0 {
		query.Set(constant.RequestParamPage, strconv.Itoa(params.Page))
	}

	if params.Limit > 0 {
		query.Set(constant.RequestParamLimit, strconv.Itoa(params.Limit))
	}

	payload, err := repo.Call(ctx, ownerapi.Request{Method: http.MethodGet, Path: repo.path, Query: query})
	if err != nil {
		return res, err
	}

	if _, err = payload.Decode(&res.Items, repo.plural...); err != nil {
		logger.ErrorWithStack(err)

		return res, failure.BadGateway(fmt.Sprintf("unexpected %s list shape", repo.entitas)) //nolint:wrapcheck
	}

	if res.Items == nil {
		res.Items = []T{}
	}

	found, err := payload.Decode(&res.Pagination, paginationKey)
	if err != nil {
		logger.ErrorWithStack(err)
	}

	if !found {
		res.Pagination = dto.Pagination{Page: params.Page, Limit: params.Limit, Total: len(res.Items)}
	}

	res.Pagination = res.Pagination.Normalize()

	return res, nil
}

func (repo *Repository[T]) Get(ctx context.Context, id string) (res T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := repo.Call(ctx, ownerapi.Request{Method: http.MethodGet, Path: repo.Path(id)})
	if err != nil {
		return res, err
	}

	found, err := payload.Decode(&res, repo.singular)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, failure.BadGateway(fmt.Sprintf("unexpected %s shape", repo.entitas)) //nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound(repo.entitas + " not found") //nolint:wrapcheck
	}

	return res, nil
}

// Send issues a mutation and returns the entity echoed back, or nil when the backend sent none.
func (repo *Repository[T]) Send(ctx context.Context, method, path string, body any) (res *T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Send", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := repo.Call(ctx, ownerapi.Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}

	var entity T

	found, err := payload.Decode(&entity, repo.singular)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, nil
	}

	if !found {
		return nil, nil
	}

	return &entity, nil
}

func (repo *Repository[T]) Create(ctx context.Context, body any) (*T, error) {
	return repo.Send(ctx, http.MethodPost, repo.path, body)
}

func (repo *Repository[T]) Update(ctx context.Context, id string, body any) (*T, error) {
	return repo.Send(ctx, http.MethodPatch, repo.Path(id), body)
}

// Action posts to a verb below one entity, e.g. /bookings/7/archive.
func (repo *Repository[T]) Action(ctx context.Context, id, action string) (*T, error) {
	return repo.Send(ctx, http.MethodPost, repo.Path(id, action), nil)
}

func (repo *Repository[T]) Delete(ctx context.Context, id string) error {
	_, err := repo.Call(ctx, ownerapi.Request{Method: http.MethodDelete, Path: repo.Path(id)})

	return err
}

// Fetch GETs a sub-resource and decodes key into out. An empty key decodes the whole envelope.
func (repo *Repository[T]) Fetch(ctx context.Context, query url.Values, out any, key string, segments ...string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Fetch", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, err := repo.Call(ctx, ownerapi.Request{Method: http.MethodGet, Path: repo.Path(segments...), Query: query})
	if err != nil {
		return err
	}

	if key == "" {
		raw, _ := json.Marshal(payload)
		if err = json.Unmarshal(raw, out); err != nil {
			logger.ErrorWithStack(err)

			return failure.BadGateway(fmt.Sprintf("unexpected %s shape", repo.entitas)) //nolint:wrapcheck
		}

		return nil
	}

	if _, err = payload.Decode(out, key); err != nil {
		logger.ErrorWithStack(err)

		return failure.BadGateway(fmt.Sprintf("unexpected %s shape", key)) //nolint:wrapcheck
	}

	return nil
}
