package service

import (
	"context"
	"time"

	"shareit/internal/database"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type ItemService struct {
	db     *database.DB
	logger zerolog.Logger
}

func NewItemService(db *database.DB, logger *zerolog.Logger) *ItemService {
	return &ItemService{db: db, logger: componentLogger(logger, "item-service")}
}

// Get returns the item with its comments. Last and next bookings are
// attached only when the requesting user owns the item.
func (s *ItemService) Get(ctx context.Context, itemID, userID int64) (*models.ItemView, error) {
	item, err := s.db.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{What: "item", ID: itemID}
	}

	view := models.ItemView{Item: *item, Comments: []models.Comment{}}

	if item.OwnerID == userID {
		bookings, err := s.db.BookingsForItems(ctx, []int64{itemID})
		if err != nil {
			return nil, err
		}
		view.LastBooking, view.NextBooking = lastAndNext(bookings, time.Now())
	}

	comments, err := s.db.CommentsForItems(ctx, []int64{itemID})
	if err != nil {
		return nil, err
	}
	if comments != nil {
		view.Comments = comments
	}

	return &view, nil
}

// ListByOwner returns the owner's items with their last/next bookings and
// comments, batched per item.
func (s *ItemService) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]models.ItemView, error) {
	limit, offset := pageOffset(from, size)
	items, err := s.db.ItemsByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]int64, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	bookings, err := s.db.BookingsForItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	bookingsByItem := make(map[int64][]models.Booking)
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}

	comments, err := s.db.CommentsForItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[int64][]models.Comment)
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	now := time.Now()
	views := make([]models.ItemView, 0, len(items))
	for _, item := range items {
		view := models.ItemView{Item: item, Comments: []models.Comment{}}
		view.LastBooking, view.NextBooking = lastAndNext(bookingsByItem[item.ID], now)
		if cs := commentsByItem[item.ID]; cs != nil {
			view.Comments = cs
		}
		views = append(views, view)
	}
	return views, nil
}

// Search returns available items matching the phrase. A blank phrase
// short-circuits to an empty result without touching the store.
func (s *ItemService) Search(ctx context.Context, phrase string, from, size int) ([]models.Item, error) {
	if isBlank(phrase) {
		return []models.Item{}, nil
	}
	limit, offset := pageOffset(from, size)
	items, err := s.db.SearchItems(ctx, phrase, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

func (s *ItemService) Create(ctx context.Context, ownerID int64, in models.NewItem) (*models.Item, error) {
	if isBlank(in.Name) || isBlank(in.Description) || in.Available == nil {
		return nil, &ValidationError{Msg: "name, description and available are required"}
	}

	owner, err := s.db.GetUser(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, &NotFoundError{What: "user", ID: ownerID}
	}

	item := models.Item{
		OwnerID:     ownerID,
		RequestID:   in.RequestID,
		Name:        in.Name,
		Description: in.Description,
		Available:   *in.Available,
	}
	if err := s.db.CreateItem(ctx, &item); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", ownerID).Msg("item created")
	return &item, nil
}

// Update applies a partial update. Only the current owner may update, and
// ownership reassignment requires the new owner to exist.
func (s *ItemService) Update(ctx context.Context, itemID, actingUserID int64, patch models.ItemPatch) (*models.Item, error) {
	if patch.Name != nil && isBlank(*patch.Name) || patch.Description != nil && isBlank(*patch.Description) {
		return nil, &ValidationError{Msg: "name and description must not be blank"}
	}

	acting, err := s.db.GetUser(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if acting == nil {
		return nil, &NotFoundError{What: "user", ID: actingUserID}
	}

	item, err := s.db.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{What: "item", ID: itemID}
	}

	if item.OwnerID != actingUserID {
		return nil, &ForbiddenError{Msg: "only the owner may update an item"}
	}

	if patch.OwnerID != nil && *patch.OwnerID != actingUserID {
		newOwner, err := s.db.GetUser(ctx, *patch.OwnerID)
		if err != nil {
			return nil, err
		}
		if newOwner == nil {
			return nil, &NotFoundError{What: "user", ID: *patch.OwnerID}
		}
	}

	patch.Apply(item)
	if err := s.db.SaveItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", item.ID).Msg("item updated")
	return item, nil
}

// AddComment stores a comment from a user who has a past, non-rejected
// booking of the item.
func (s *ItemService) AddComment(ctx context.Context, itemID, authorID int64, in models.NewComment) (*models.Comment, error) {
	if isBlank(in.Text) {
		return nil, &ValidationError{Msg: "comment text must not be blank"}
	}

	item, err := s.db.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{What: "item", ID: itemID}
	}

	author, err := s.db.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, &NotFoundError{What: "user", ID: authorID}
	}

	qualified, err := s.db.HasFinishedBooking(ctx, itemID, authorID, time.Now())
	if err != nil {
		return nil, err
	}
	if !qualified {
		return nil, &BadRequestError{Msg: "commenting requires a finished booking of the item"}
	}

	comment := models.Comment{
		ItemID:   itemID,
		AuthorID: authorID,
		Text:     in.Text,
		Created:  time.Now(),
	}
	if err := s.db.CreateComment(ctx, &comment); err != nil {
		return nil, err
	}
	comment.AuthorName = author.Name

	s.logger.Info().Int64("item_id", itemID).Int64("author_id", authorID).Msg("comment added")
	return &comment, nil
}

// lastAndNext picks the latest booking started by now and the earliest
// one starting after now. Bookings arrive ordered by start ascending.
func lastAndNext(bookings []models.Booking, now time.Time) (last, next *models.BookingRef) {
	for i := range bookings {
		b := bookings[i]
		if !b.Start.After(now) {
			last = &models.BookingRef{ID: b.ID, BookerID: b.BookerID}
			continue
		}
		if next == nil {
			next = &models.BookingRef{ID: b.ID, BookerID: b.BookerID}
		}
	}
	return last, next
}
