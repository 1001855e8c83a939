package service

import (
	"context"
	"time"

	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/entity"
	"customer-notes-be/internal/pkg/apperror"
	"customer-notes-be/internal/pkg/metrics"
	"customer-notes-be/internal/repository/specification"
	"customer-notes-be/internal/repository/unitofwork"
	"customer-notes-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, customerId, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context, customerId uuid.UUID, query *dto.ListNotesQuery) (*dto.NoteListResponse, error)
	Update(ctx context.Context, noteId, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, noteId, userId uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	collector        *metrics.Collector
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	collector *metrics.Collector,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		collector:        collector,
	}
}

func (s *noteService) Create(ctx context.Context, customerId, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer not found")
	}

	now := time.Now()
	note := entity.Note{
		Id:         uuid.New(),
		CustomerId: customerId,
		UserId:     userId,
		Content:    req.Content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.collector.Increment("notes_created_total")
	s.publishNoteEvent(ctx, events.NoteCreated, &note)

	return toNoteResponse(&note), nil
}

// List is the notes query engine: verifies the customer, applies the
// optional case-insensitive substring filter, orders newest first with the
// id as deterministic tie-break, and counts the full match separately from
// the returned page.
func (s *noteService) List(ctx context.Context, customerId uuid.UUID, query *dto.ListNotesQuery) (*dto.NoteListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer not found")
	}

	filters := []specification.Specification{
		specification.ByCustomerID{CustomerID: customerId},
	}
	if query.Search != "" {
		filters = append(filters, specification.ContentContains{Search: query.Search})
	}

	total, err := uow.NoteRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	page := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id"},
		specification.Pagination{Limit: query.Limit, Offset: query.Offset},
	)
	notes, err := uow.NoteRepository().FindAll(ctx, page...)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		items[i] = toNoteResponse(note)
	}

	return &dto.NoteListResponse{
		Items:   items,
		Total:   total,
		Limit:   query.Limit,
		Offset:  query.Offset,
		HasMore: int64(query.Offset+len(items)) < total,
	}, nil
}

func (s *noteService) Update(ctx context.Context, noteId, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Absence is reported before the ownership check.
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("Note not found")
	}
	if note.UserId != userId {
		return nil, apperror.Forbidden("You can only update your own notes")
	}

	note.Content = req.Content
	note.UpdatedAt = time.Now()
	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.collector.Increment("notes_updated_total")
	s.publishNoteEvent(ctx, events.NoteUpdated, note)

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, noteId, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: noteId})
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("Note not found")
	}
	if note.UserId != userId {
		return apperror.Forbidden("You can only delete your own notes")
	}

	if _, err := uow.NoteRepository().Delete(ctx, noteId); err != nil {
		return err
	}

	s.collector.Increment("notes_deleted_total")
	s.publishNoteEvent(ctx, events.NoteDeleted, note)

	return nil
}

func (s *noteService) publishNoteEvent(ctx context.Context, eventType string, note *entity.Note) {
	_ = s.publisherService.Publish(ctx, events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"note_id":     note.Id,
			"customer_id": note.CustomerId,
			"user_id":     note.UserId,
		},
		OccurredAt: time.Now(),
	})
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:         n.Id,
		CustomerId: n.CustomerId,
		UserId:     n.UserId,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}
