package entities

// Stat names as they appear in the flat file header
const (
	StatHP             = "hp"
	StatAttack         = "attack"
	StatDefense        = "defense"
	StatSpecialAttack  = "special-attack"
	StatSpecialDefense = "special-defense"
	StatSpeed          = "speed"
)

// StatNames lists the battle stats in display order
var StatNames = []string{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// StatLabels are the short chart labels, parallel to StatNames
var StatLabels = []string{"HP", "Attack", "Defense", "Sp. Attack", "Sp. Defense", "Speed"}

// Column names of the flat file
const (
	FieldID                 = "id"
	FieldName               = "name"
	FieldBaseExperience     = "base_experience"
	FieldHeight             = "height"
	FieldWeight             = "weight"
	FieldPrimaryType        = "type_1"
	FieldSecondaryType      = "type_2"
	FieldAbilities          = "abilities"
	FieldSpriteURL          = "sprite_url"
	FieldGenderRate         = "gender_rate"
	FieldCaptureRate        = "capture_rate"
	FieldIsLegendary        = "is_legendary"
	FieldBaseHappiness      = "base_happiness"
	FieldHatchCounter       = "hatch_counter"
	FieldEggGroups          = "egg_groups"
	FieldChainID            = "evolution_chain_id"
	FieldStage              = "evolution_stage"
	FieldGenderDistribution = "gender_distribution"
)

// Gender rate codes
const (
	GenderRateGenderless = -1
	GenderRateAllMale    = 0
	GenderRateAllFemale  = 8
)

// MaxCaptureRate is the easiest possible capture score
const MaxCaptureRate = 255
