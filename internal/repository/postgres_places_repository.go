package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"

	"Wayn-App/internal/domain/model"
	"Wayn-App/internal/domain/repository"
	"Wayn-App/internal/infrastructure/database"
)

// PostgresPlacesRepository is the direct-SQL variant of the places
// repository, for deployments that talk to the catalog database
// without the postgrest layer.
type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresPlacesRepository creates a new PostgresPlacesRepository.
func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

const placeColumns = `id, name, category, description, location_name, google_maps_url,
	image_url, images, tags, suitable_for, events, is_active, priority, location`

// scanPlace reads one row into a Place. The location column holds a
// GeoJSON point (nullable).
func scanPlace(scan func(dest ...interface{}) error) (*model.Place, error) {
	var place model.Place
	var imageURL sql.NullString
	var locationJSON []byte

	err := scan(
		&place.ID, &place.Name, &place.Category, &place.Description,
		&place.LocationName, &place.GoogleMapsURL, &imageURL,
		pq.Array(&place.Images), pq.Array(&place.Tags),
		pq.Array(&place.SuitableFor), pq.Array(&place.Events),
		&place.IsActive, &place.Priority, &locationJSON,
	)
	if err != nil {
		return nil, err
	}

	if imageURL.Valid {
		place.ImageURL = imageURL.String
	}
	if len(locationJSON) > 0 {
		var location model.Geometry
		if err := json.Unmarshal(locationJSON, &location); err != nil {
			return nil, fmt.Errorf("failed to parse location GeoJSON: %w", err)
		}
		place.Location = &location
	}

	return &place, nil
}

func (r *PostgresPlacesRepository) GetByID(ctx context.Context, id int) (*model.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE id = $1`, placeColumns)

	row := r.client.DB.QueryRowContext(ctx, query, id)
	place, err := scanPlace(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("place %d not found", id)
		}
		return nil, fmt.Errorf("failed to fetch place %d: %w", id, err)
	}
	return place, nil
}

func (r *PostgresPlacesRepository) FindActiveByCategories(ctx context.Context, categories []string) ([]model.Place, error) {
	query := fmt.Sprintf(`SELECT %s FROM places WHERE is_active = true`, placeColumns)
	args := []interface{}{}
	if len(categories) > 0 {
		query += ` AND category = ANY($1)`
		args = append(args, pq.Array(categories))
	}

	rows, err := r.client.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog candidates: %w", err)
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		place, err := scanPlace(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		places = append(places, *place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate place rows: %w", err)
	}

	return places, nil
}

func (r *PostgresPlacesRepository) UpdateImageURL(ctx context.Context, id int, imageURL string) error {
	result, err := r.client.DB.ExecContext(ctx,
		`UPDATE places SET image_url = $1, updated_at = now() WHERE id = $2`, imageURL, id)
	if err != nil {
		return fmt.Errorf("failed to cache image URL for place %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("place %d not found", id)
	}
	return nil
}
