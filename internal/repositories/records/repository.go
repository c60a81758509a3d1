// Package records persists creature snapshots as a flat file or an SQLite table
package records

//go:generate mockgen -destination=mock/mock_repository.go -package=recordsmock github.com/KirkDiggler/dexboard/internal/repositories/records Repository

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/dexboard/internal/entities"
)

// Repository loads and saves the full creature snapshot
type Repository interface {
	// Load reads every stored creature in storage order
	// Returns errors.Unavailable if the source is missing, unreadable, lacks a required column
	// or holds no records
	// Never fails because of a single bad value; those are reported in LoadOutput.Failures
	Load(ctx context.Context) (*LoadOutput, error)

	// Save replaces the stored snapshot with input.Creatures
	// Returns errors.InvalidArgument for an empty snapshot
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// LoadOutput defines the output for loading a snapshot
type LoadOutput struct {
	Creatures []*entities.Creature
	Failures  []CoercionFailure
}

// SaveInput defines the input for saving a snapshot
type SaveInput struct {
	Creatures []*entities.Creature
}

// SaveOutput defines the output for saving a snapshot
type SaveOutput struct {
	Written int
}

// CoercionFailure records one value that could not be read as a number.
// Row is the 1-based data row; the header is row 0.
type CoercionFailure struct {
	Row   int
	Field string
	Value string
}

func (f CoercionFailure) String() string {
	return fmt.Sprintf("row %d: %s=%q is not a number", f.Row, f.Field, f.Value)
}

// RequiredColumns must all be present in a flat file header
var RequiredColumns = []string{
	entities.FieldID,
	entities.FieldName,
	entities.FieldChainID,
	entities.FieldSpriteURL,
	entities.FieldPrimaryType,
	entities.FieldSecondaryType,
	entities.FieldAbilities,
	entities.FieldHeight,
	entities.FieldWeight,
	entities.StatHP,
	entities.StatAttack,
	entities.StatDefense,
	entities.StatSpecialAttack,
	entities.StatSpecialDefense,
	entities.StatSpeed,
}

// Columns is the full header written by Save, in order
var Columns = []string{
	entities.FieldID,
	entities.FieldName,
	entities.FieldBaseExperience,
	entities.FieldHeight,
	entities.FieldWeight,
	entities.FieldPrimaryType,
	entities.FieldSecondaryType,
	entities.StatHP,
	entities.StatAttack,
	entities.StatDefense,
	entities.StatSpecialAttack,
	entities.StatSpecialDefense,
	entities.StatSpeed,
	entities.FieldAbilities,
	entities.FieldSpriteURL,
	entities.FieldGenderRate,
	entities.FieldCaptureRate,
	entities.FieldIsLegendary,
	entities.FieldBaseHappiness,
	entities.FieldHatchCounter,
	entities.FieldEggGroups,
	entities.FieldChainID,
	entities.FieldStage,
	entities.FieldGenderDistribution,
}
