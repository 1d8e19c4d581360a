package item

import (
	"time"

	domain "lostfound-backend/internal/domain/item"
)

type LostItemInput struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Category    string     `json:"category" validate:"max=100"`
	Description string     `json:"description"`
	LastSeen    string     `json:"last_seen" validate:"max=255"`
	LastSeenAt  *time.Time `json:"last_seen_at"`
	Photo       string     `json:"photo" validate:"max=255"`
}

type FoundItemInput struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Category    string     `json:"category" validate:"max=100"`
	Description string     `json:"description"`
	WhereFound  string     `json:"where_found" validate:"max=255"`
	FoundAt     *time.Time `json:"found_at"`
	Photo       string     `json:"photo" validate:"max=255"`
}

type LostItemDTO struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	LastSeen     string     `json:"last_seen"`
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
	Status       string     `json:"status"`
	Photo        string     `json:"photo,omitempty"`
	HasEmbedding bool       `json:"has_embedding"`
	ReportedAt   time.Time  `json:"reported_at"`
}

type FoundItemDTO struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Description  string     `json:"description"`
	WhereFound   string     `json:"where_found"`
	FoundAt      *time.Time `json:"found_at,omitempty"`
	Status       string     `json:"status"`
	Photo        string     `json:"photo,omitempty"`
	HasEmbedding bool       `json:"has_embedding"`
	ReportedAt   time.Time  `json:"reported_at"`
}

type MyItemsDTO struct {
	Lost  []LostItemDTO  `json:"lost"`
	Found []FoundItemDTO `json:"found"`
}

func toLostDTO(it *domain.LostItem) *LostItemDTO {
	return &LostItemDTO{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Description:  it.Description,
		LastSeen:     it.LastSeen,
		LastSeenAt:   it.LastSeenAt,
		Status:       string(it.Status),
		Photo:        it.Photo,
		HasEmbedding: it.Embedding != nil && *it.Embedding != "",
		ReportedAt:   it.ReportedAt,
	}
}

func toFoundDTO(it *domain.FoundItem) *FoundItemDTO {
	return &FoundItemDTO{
		ID:           it.ID,
		Name:         it.Name,
		Category:     it.Category,
		Description:  it.Description,
		WhereFound:   it.WhereFound,
		FoundAt:      it.FoundAt,
		Status:       string(it.Status),
		Photo:        it.Photo,
		HasEmbedding: it.Embedding != nil && *it.Embedding != "",
		ReportedAt:   it.ReportedAt,
	}
}
