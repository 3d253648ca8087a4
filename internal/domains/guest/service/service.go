package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/guest/model"
	"lodge/internal/domains/guest/model/dto"
	"lodge/internal/domains/guest/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuest    = "guest:get"
	cacheGetAllGuest = "guest:gets"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]dto.GuestResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (dto.GuestResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest := req.ToModel()

	if err = s.repo.Insert(ctx, guest); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("Guest email already exists") // nolint:wrapcheck
		}

		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuest)

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) (res []dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guests")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res = dto.FromModels(models)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save guests to cache")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guest")

		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	res.FromModel(guest)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save guest to cache")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGuestRequest, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check guest existence")

		return res, err
	}

	if current.ID == constant.Empty {
		log.Error().Msg("guest not found")

		return res, failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req)
	if req.Email != "" {
		updatedFields[model.FieldEmail] = strings.ToLower(req.Email)
	}

	// A supplied address replaces the whole address block.
	if req.Address != nil {
		updatedFields[model.FieldAddressStreet] = req.Address.Street
		updatedFields[model.FieldAddressCity] = req.Address.City
		updatedFields[model.FieldAddressCountry] = req.Address.Country
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("Guest email already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuest)

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get updated guest")

		return res, fmt.Errorf("failed to get updated guest: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !exist {
		log.Error().Msg("guest not found")

		return failure.NotFound("Guest not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete guest from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllGuest)

	return nil
}
