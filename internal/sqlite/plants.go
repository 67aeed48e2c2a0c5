// Plant rows: insertion, listing, and single-plant lookup. Hydration always
// recomputes the growth stage from XP; the stored stage column exists for
// external readers and is never trusted here.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/verdant-labs/garden/pkg/progression"
	"github.com/verdant-labs/garden/pkg/types"
)

const plantColumns = "plant_id, name, species, xp, stage, created_at"

// InsertPlant validates the plant, assigns a UUID v7 and creation time, and
// persists it with xp=0, stage=0.
func (b *Backend) InsertPlant(ctx context.Context, owner string, plant *types.Plant) (string, error) {
	db, err := b.conn()
	if err != nil {
		return "", err
	}
	if owner == "" {
		return "", types.ErrNoOwner
	}
	if err := plant.Validate(); err != nil {
		return "", err
	}

	plant.PlantID = generateUUID()
	if plant.Species == "" {
		plant.Species = types.DefaultSpecies
	}
	plant.XP = 0
	plant.Stage = 0
	plant.CreatedAt = time.Now().UTC()

	_, err = db.ExecContext(ctx,
		"INSERT INTO plants (plant_id, owner_id, name, species, xp, stage, created_at) VALUES (?, ?, ?, ?, 0, 0, ?)",
		plant.PlantID, owner, plant.Name, plant.Species, plant.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("inserting plant: %w", err)
	}
	return plant.PlantID, nil
}

// FetchLivePlants returns all of the owner's plants, newest first.
func (b *Backend) FetchLivePlants(ctx context.Context, owner string) ([]*types.Plant, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, types.ErrNoOwner
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+plantColumns+" FROM plants WHERE owner_id = ? ORDER BY created_at DESC, plant_id DESC",
		owner,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching plants: %w", err)
	}
	defer rows.Close()

	var plants []*types.Plant
	for rows.Next() {
		plant, err := hydratePlant(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating plant: %w", err)
		}
		plants = append(plants, plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetching plants: %w", err)
	}
	return plants, nil
}

// GetPlant returns one plant by ID. Returns ErrNotFound if absent.
func (b *Backend) GetPlant(ctx context.Context, owner, plantID string) (*types.Plant, error) {
	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if owner == "" {
		return nil, types.ErrNoOwner
	}
	if plantID == "" {
		return nil, types.ErrInvalidID
	}

	row := db.QueryRowContext(ctx,
		"SELECT "+plantColumns+" FROM plants WHERE plant_id = ? AND owner_id = ?",
		plantID, owner,
	)
	plant, err := hydratePlant(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting plant %s: %w", plantID, err)
	}
	return plant, nil
}

// hydratePlant scans one plant row. The stored stage is discarded in favor
// of the derivation from XP.
func hydratePlant(row rowScanner) (*types.Plant, error) {
	var (
		plant       types.Plant
		storedStage int
		createdAt   string
	)
	if err := row.Scan(&plant.PlantID, &plant.Name, &plant.Species,
		&plant.XP, &storedStage, &createdAt); err != nil {
		return nil, err
	}
	plant.Stage = progression.StageOf(plant.XP)
	plant.CreatedAt = parseTimestamp(createdAt)
	return &plant, nil
}
