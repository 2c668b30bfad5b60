package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
	"Wayn-App/internal/infrastructure/database"
)

// SupabasePlacesRepository reads the place catalog through postgrest.
type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

// NewSupabasePlacesRepository creates a new SupabasePlacesRepository.
func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

// placeRow mirrors the snake_case columns of the places table.
type placeRow struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	LocationName  string          `json:"location_name"`
	GoogleMapsURL string          `json:"google_maps_url"`
	ImageURL      string          `json:"image_url"`
	Images        []string        `json:"images"`
	Tags          []string        `json:"tags"`
	SuitableFor   []string        `json:"suitable_for"`
	Events        []string        `json:"events"`
	IsActive      bool            `json:"is_active"`
	Priority      int             `json:"priority"`
	Location      *model.Geometry `json:"location"`
}

func (r *placeRow) toPlace() model.Place {
	return model.Place{
		ID:            r.ID,
		Name:          r.Name,
		Category:      r.Category,
		Description:   r.Description,
		LocationName:  r.LocationName,
		GoogleMapsURL: r.GoogleMapsURL,
		ImageURL:      r.ImageURL,
		Images:        r.Images,
		Tags:          r.Tags,
		SuitableFor:   r.SuitableFor,
		Events:        r.Events,
		IsActive:      r.IsActive,
		Priority:      r.Priority,
		Location:      r.Location,
	}
}

func (r *SupabasePlacesRepository) GetByID(ctx context.Context, id int) (*model.Place, error) {
	var rows []placeRow
	data, count, err := r.client.GetClient().From("places").
		Select("*", "exact", false).
		Eq("id", strconv.Itoa(id)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch place %d: %w", id, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("place %d not found", id)
	}

	place := rows[0].toPlace()
	return &place, nil
}

func (r *SupabasePlacesRepository) FindActiveByCategories(ctx context.Context, categories []string) ([]model.Place, error) {
	query := r.client.GetClient().From("places").
		Select("*", "exact", false).
		Eq("is_active", "true")
	if len(categories) > 0 {
		query = query.In("category", categories)
	}

	data, count, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog candidates: %w", err)
	}
	_ = count

	var rows []placeRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal place rows: %w", err)
	}

	places := make([]model.Place, 0, len(rows))
	for i := range rows {
		places = append(places, rows[i].toPlace())
	}
	return places, nil
}

func (r *SupabasePlacesRepository) UpdateImageURL(ctx context.Context, id int, imageURL string) error {
	_, _, err := r.client.GetClient().From("places").
		Update(map[string]interface{}{"image_url": imageURL}, "", "").
		Eq("id", strconv.Itoa(id)).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to cache image URL for place %d: %w", id, err)
	}
	return nil
}
