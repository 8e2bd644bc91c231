package service

import (
	"context"
	"time"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type RequestService struct {
	db     *database.DB
	logger zerolog.Logger
}

func NewRequestService(db *database.DB, logger *zerolog.Logger) *RequestService {
	return &RequestService{db: db, logger: componentLogger(logger, "request-service")}
}

func (s *RequestService) Create(ctx context.Context, userID int64, in models.NewRequest) (*models.ItemRequest, error) {
	if isBlank(in.Description) {
		return nil, &ValidationError{Msg: "description is required"}
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	request := models.ItemRequest{
		RequesterID: userID,
		Description: in.Description,
		Created:     time.Now(),
	}
	if err := s.db.CreateRequest(ctx, &request); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", request.ID).Int64("requester_id", userID).Msg("item request created")
	return &request, nil
}

// Own returns the user's requests, newest first, with the items listed to
// fulfill each one.
func (s *RequestService) Own(ctx context.Context, userID int64) ([]models.RequestView, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.db.RequestsByRequester(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// FromOthers returns everyone else's requests, paginated, newest first.
func (s *RequestService) FromOthers(ctx context.Context, userID int64, from, size int) ([]models.RequestView, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	limit, offset := pageOffset(from, size)
	requests, err := s.db.RequestsByOthers(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *RequestService) Get(ctx context.Context, userID, requestID int64) (*models.RequestView, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	request, err := s.db.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, &NotFoundError{What: "item request", ID: requestID}
	}

	views, err := s.attachItems(ctx, []models.ItemRequest{*request})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *RequestService) attachItems(ctx context.Context, requests []models.ItemRequest) ([]models.RequestView, error) {
	requestIDs := make([]int64, 0, len(requests))
	for _, r := range requests {
		requestIDs = append(requestIDs, r.ID)
	}

	items, err := s.db.ItemsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	itemsByRequest := make(map[int64][]models.Item)
	for _, item := range items {
		if item.RequestID == nil {
			continue
		}
		itemsByRequest[*item.RequestID] = append(itemsByRequest[*item.RequestID], item)
	}

	views := make([]models.RequestView, 0, len(requests))
	for _, r := range requests {
		view := models.RequestView{ItemRequest: r, Items: []models.Item{}}
		if is := itemsByRequest[r.ID]; is != nil {
			view.Items = is
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *RequestService) requireUser(ctx context.Context, userID int64) error {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return &NotFoundError{What: "user", ID: userID}
	}
	return nil
}
