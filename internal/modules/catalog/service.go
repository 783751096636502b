package catalog

import (
	"context"
	"errors"
	"strings"

	"resort-backend/internal/domain"
	"resort-backend/internal/repository"

	"gorm.io/gorm"
)

// Service owns the resort, room type and room catalog. Room writes that
// touch both the room and its detail record run in one transaction.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) ListResorts(ctx context.Context) ([]domain.Resort, error) {
	return repository.NewResortRepository(s.db).List(ctx)
}

func (s *Service) CreateResort(ctx context.Context, req CreateResortRequest) (*domain.Resort, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	resort := &domain.Resort{Name: name}
	if err := repository.NewResortRepository(s.db).Create(ctx, resort); err != nil {
		return nil, err
	}
	return resort, nil
}

func (s *Service) UpdateResort(ctx context.Context, id int64, req CreateResortRequest) (*domain.Resort, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	resorts := repository.NewResortRepository(s.db)
	if err := resorts.Update(ctx, &domain.Resort{ID: id, Name: name}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return resorts.GetByID(ctx, id)
}

// DeleteResort refuses while any room still references the resort.
func (s *Service) DeleteResort(ctx context.Context, id int64) error {
	resorts := repository.NewResortRepository(s.db)

	cnt, err := resorts.CountRooms(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrResortHasRooms
	}

	if err := resorts.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return repository.NewRoomTypeRepository(s.db).List(ctx)
}

func (s *Service) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (*domain.RoomType, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.PricePerNight <= 0 {
		return nil, ErrValidation
	}
	rt := &domain.RoomType{Name: name, PricePerNight: req.PricePerNight}
	if err := repository.NewRoomTypeRepository(s.db).Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (s *Service) DeleteRoomType(ctx context.Context, id int64) error {
	types := repository.NewRoomTypeRepository(s.db)

	cnt, err := types.CountRooms(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrTypeHasRooms
	}

	if err := types.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListRooms(ctx context.Context, f repository.RoomFilter) ([]repository.RoomRow, error) {
	return repository.NewRoomRepository(s.db).ListRows(ctx, f)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*repository.RoomRow, error) {
	row, err := repository.NewRoomRepository(s.db).GetRowByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *Service) checkReferences(ctx context.Context, tx *gorm.DB, resortID, roomTypeID int64) error {
	if _, err := repository.NewResortRepository(tx).GetByID(ctx, resortID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownReference
		}
		return err
	}
	if _, err := repository.NewRoomTypeRepository(tx).GetByID(ctx, roomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnknownReference
		}
		return err
	}
	return nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*repository.RoomRow, error) {
	var roomID int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.checkReferences(ctx, tx, req.ResortID, req.RoomTypeID); err != nil {
			return err
		}

		room := &domain.Room{
			ResortID:   req.ResortID,
			RoomTypeID: req.RoomTypeID,
			Location:   strings.TrimSpace(req.Location),
			Address:    req.Address,
			Status:     domain.RoomAvailable,
			Category:   req.Category,
		}
		if err := repository.NewRoomRepository(tx).Create(ctx, room); err != nil {
			return err
		}
		roomID = room.ID

		if req.Detail != nil {
			return repository.NewRoomDetailRepository(tx).Upsert(ctx, &domain.RoomDetail{
				RoomID:        room.ID,
				Description:   req.Detail.Description,
				Features:      req.Detail.Features,
				Images:        req.Detail.Images,
				NumBed:        req.Detail.NumBed,
				PricePerNight: req.Detail.PricePerNight,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, roomID)
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*repository.RoomRow, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := repository.NewRoomRepository(tx)

		current, err := rooms.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := s.checkReferences(ctx, tx, req.ResortID, req.RoomTypeID); err != nil {
			return err
		}

		status := current.Status
		if req.Status != "" {
			status = domain.RoomStatus(req.Status)
		}
		if err := rooms.Update(ctx, &domain.Room{
			ID:         id,
			ResortID:   req.ResortID,
			RoomTypeID: req.RoomTypeID,
			Location:   strings.TrimSpace(req.Location),
			Address:    req.Address,
			Status:     status,
			Category:   req.Category,
		}); err != nil {
			return err
		}

		if req.Detail != nil {
			return repository.NewRoomDetailRepository(tx).Upsert(ctx, &domain.RoomDetail{
				RoomID:        id,
				Description:   req.Detail.Description,
				Features:      req.Detail.Features,
				Images:        req.Detail.Images,
				NumBed:        req.Detail.NumBed,
				PricePerNight: req.Detail.PricePerNight,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetRoom(ctx, id)
}

// DeleteRoom refuses while booking history references the room, then removes
// the room together with its detail record.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rooms := repository.NewRoomRepository(tx)

		cnt, err := rooms.CountBookings(ctx, id)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrRoomHasBookings
		}

		if err := repository.NewRoomDetailRepository(tx).DeleteByRoomID(ctx, id); err != nil {
			return err
		}
		if err := rooms.Delete(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
}
