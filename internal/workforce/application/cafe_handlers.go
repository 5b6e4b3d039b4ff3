package application

import (
	"context"
	"errors"

	"github.com/cafeworks/go-workforce/internal/workforce/domain"
	pkgApp "github.com/cafeworks/go-workforce/pkg/application"
	pkgDomain "github.com/cafeworks/go-workforce/pkg/domain"
)

type createCafeHandler struct {
	repository  domain.CafeRepository
	idGenerator pkgDomain.IDGenerator[string]
	eventBus    pkgApp.EventBus[pkgDomain.Event[string], string]
	logger      pkgApp.AppLogger
}

func NewCreateCafeHandler(repo domain.CafeRepository, idGenerator pkgDomain.IDGenerator[string], eventBus pkgApp.EventBus[pkgDomain.Event[string], string], logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[CreateCafeData], CreateCafeData, domain.Cafe] {
	return &createCafeHandler{
		repository:  repo,
		idGenerator: idGenerator,
		eventBus:    eventBus,
		logger:      logger,
	}
}

func (h *createCafeHandler) Handle(ctx context.Context, command pkgDomain.Command[CreateCafeData]) (domain.Cafe, error) {
	if ctx.Err() != nil {
		return domain.Cafe{}, ctx.Err()
	}

	data := command.Payload()
	cafe := domain.Cafe{
		ID:          h.idGenerator(),
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Location:    data.Location,
	}

	if err := cafe.Validate(); err != nil {
		return domain.Cafe{}, err
	}

	// Pre-check keeps the common failure cheap; the repository's unique
	// constraint still decides the race at commit time.
	if _, err := h.repository.FindByName(ctx, cafe.Name); err == nil {
		return domain.Cafe{}, domain.ErrCafeNameTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Cafe{}, err
	}

	if err := h.repository.Save(ctx, cafe); err != nil {
		pkgApp.LogError(ctx, h.logger, "error saving cafe", err, map[string]interface{}{"cafe": cafe})
		return domain.Cafe{}, err
	}

	if err := h.eventBus.Publish(ctx, NewCafeCreatedEvent("cafe "+cafe.Name+" created")); err != nil {
		pkgApp.LogError(ctx, h.logger, "error publishing event", err, nil)
	}

	pkgApp.LogInfo(ctx, h.logger, "cafe created", map[string]interface{}{"cafe_id": cafe.ID})
	return cafe, nil
}

type updateCafeHandler struct {
	repository domain.CafeRepository
	logger     pkgApp.AppLogger
}

func NewUpdateCafeHandler(repo domain.CafeRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[UpdateCafeData], UpdateCafeData, domain.Cafe] {
	return &updateCafeHandler{
		repository: repo,
		logger:     logger,
	}
}

func (h *updateCafeHandler) Handle(ctx context.Context, command pkgDomain.Command[UpdateCafeData]) (domain.Cafe, error) {
	if ctx.Err() != nil {
		return domain.Cafe{}, ctx.Err()
	}

	data := command.Payload()
	if _, err := h.repository.FindByID(ctx, data.ID); err != nil {
		return domain.Cafe{}, err
	}

	cafe := domain.Cafe{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Logo:        data.Logo,
		Location:    data.Location,
	}

	if err := cafe.Validate(); err != nil {
		return domain.Cafe{}, err
	}

	// The name may only collide with a different cafe.
	if existing, err := h.repository.FindByName(ctx, cafe.Name); err == nil {
		if existing.ID != cafe.ID {
			return domain.Cafe{}, domain.ErrCafeNameTaken
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Cafe{}, err
	}

	if err := h.repository.Update(ctx, cafe); err != nil {
		pkgApp.LogError(ctx, h.logger, "error updating cafe", err, map[string]interface{}{"cafe": cafe})
		return domain.Cafe{}, err
	}

	pkgApp.LogInfo(ctx, h.logger, "cafe updated", map[string]interface{}{"cafe_id": cafe.ID})
	return cafe, nil
}

type deleteCafeHandler struct {
	repository  domain.CafeRepository
	assignments domain.EmployeeCafeRepository
	logger      pkgApp.AppLogger
}

func NewDeleteCafeHandler(repo domain.CafeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[DeleteCafeData], DeleteCafeData, bool] {
	return &deleteCafeHandler{
		repository:  repo,
		assignments: assignments,
		logger:      logger,
	}
}

func (h *deleteCafeHandler) Handle(ctx context.Context, command pkgDomain.Command[DeleteCafeData]) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	data := command.Payload()
	if _, err := h.repository.FindByID(ctx, data.ID); err != nil {
		return false, err
	}

	// Assignment records do not outlive the cafe they reference.
	if err := h.assignments.DeleteByCafeID(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting cafe assignments", err, map[string]interface{}{"cafe_id": data.ID})
		return false, err
	}

	if err := h.repository.Delete(ctx, data.ID); err != nil {
		pkgApp.LogError(ctx, h.logger, "error deleting cafe", err, map[string]interface{}{"cafe_id": data.ID})
		return false, err
	}

	pkgApp.LogInfo(ctx, h.logger, "cafe deleted", map[string]interface{}{"cafe_id": data.ID})
	return true, nil
}

type getCafeByIDHandler struct {
	repository  domain.CafeRepository
	assignments domain.EmployeeCafeRepository
	logger      pkgApp.AppLogger
}

func NewGetCafeByIDHandler(repo domain.CafeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[CafeByIDData], CafeByIDData, CafeDTO] {
	return &getCafeByIDHandler{
		repository:  repo,
		assignments: assignments,
		logger:      logger,
	}
}

func (h *getCafeByIDHandler) Handle(ctx context.Context, query pkgDomain.Query[CafeByIDData]) (CafeDTO, error) {
	if ctx.Err() != nil {
		return CafeDTO{}, ctx.Err()
	}

	cafe, err := h.repository.FindByID(ctx, query.Payload().ID)
	if err != nil {
		return CafeDTO{}, err
	}

	count, err := h.assignments.CountActiveByCafeID(ctx, cafe.ID)
	if err != nil {
		return CafeDTO{}, err
	}

	return NewCafeDTO(cafe, count), nil
}

type cafeNameExistsHandler struct {
	repository domain.CafeRepository
	logger     pkgApp.AppLogger
}

func NewCafeNameExistsHandler(repo domain.CafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[CafeNameExistsData], CafeNameExistsData, bool] {
	return &cafeNameExistsHandler{
		repository: repo,
		logger:     logger,
	}
}

func (h *cafeNameExistsHandler) Handle(ctx context.Context, query pkgDomain.Query[CafeNameExistsData]) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	_, err := h.repository.FindByName(ctx, query.Payload().Name)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type getCafesByLocationHandler struct {
	repository  domain.CafeRepository
	assignments domain.EmployeeCafeRepository
	logger      pkgApp.AppLogger
}

func NewGetCafesByLocationHandler(repo domain.CafeRepository, assignments domain.EmployeeCafeRepository, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[CafesByLocationData], CafesByLocationData, []CafeDTO] {
	return &getCafesByLocationHandler{
		repository:  repo,
		assignments: assignments,
		logger:      logger,
	}
}

func (h *getCafesByLocationHandler) Handle(ctx context.Context, query pkgDomain.Query[CafesByLocationData]) ([]CafeDTO, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cafes, err := h.repository.FindByLocation(ctx, query.Payload().Location)
	if err != nil {
		return nil, err
	}

	dtos := make([]CafeDTO, 0, len(cafes))
	for _, cafe := range cafes {
		count, err := h.assignments.CountActiveByCafeID(ctx, cafe.ID)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, NewCafeDTO(cafe, count))
	}
	return dtos, nil
}
