package scoring

// Weight is the evidence one attribute value contributes to each axis.
type Weight struct {
	AxisA float64
	AxisB float64
}

// FieldKind distinguishes how a field's selection behaves.
type FieldKind int

const (
	// Exclusive fields hold at most one value; choosing a new value
	// replaces the old one atomically.
	Exclusive FieldKind = iota
	// BoundedSet fields hold up to Max concurrently selected values.
	BoundedSet
)

// FieldRule describes the selection semantics of one answer field.
type FieldRule struct {
	Kind FieldKind
	Max  int // only meaningful for BoundedSet
}

// WeightTable maps field -> value -> weight pair. Values absent from the
// table contribute nothing; this is deliberate so new form options can ship
// before the rule set catches up.
type WeightTable map[string]map[string]Weight

// Lookup returns the weight for (field, value), or a zero weight when
// either is unknown.
func (t WeightTable) Lookup(field, value string) Weight {
	if byValue, ok := t[field]; ok {
		return byValue[value]
	}
	return Weight{}
}

// Answer field names as they appear in the quiz form.
const (
	FieldTrack        = "track"
	FieldGradeBand    = "gradeBand"
	FieldSpecialty    = "specialty"
	FieldElective     = "elective"
	FieldEnglishLevel = "englishLevel"
	FieldObjective    = "objective"
)

// MaxSpecialties bounds the specialty multi-select.
const MaxSpecialties = 3

// DefaultFields holds the selection semantics of every scored field.
var DefaultFields = map[string]FieldRule{
	FieldTrack:        {Kind: Exclusive},
	FieldGradeBand:    {Kind: Exclusive},
	FieldSpecialty:    {Kind: BoundedSet, Max: MaxSpecialties},
	FieldElective:     {Kind: Exclusive},
	FieldEnglishLevel: {Kind: Exclusive},
	FieldObjective:    {Kind: Exclusive},
}

// DefaultWeights is the production rule set. Axis A aggregates analytical
// evidence, axis B creative/entrepreneurial evidence. Editing these tables
// is a configuration change, not an algorithm change.
var DefaultWeights = WeightTable{
	FieldTrack: {
		"general":       {AxisA: 10, AxisB: 5},
		"technological": {AxisA: 8, AxisB: 8},
		"professional":  {AxisA: 3, AxisB: 10},
	},
	FieldGradeBand: {
		"<11":   {AxisA: 0, AxisB: 2},
		"11-13": {AxisA: 4, AxisB: 4},
		"14-15": {AxisA: 8, AxisB: 5},
		"16+":   {AxisA: 12, AxisB: 6},
	},
	FieldSpecialty: {
		"Maths":             {AxisA: 10, AxisB: 2},
		"Physics-Chemistry": {AxisA: 8, AxisB: 2},
		"NSI":               {AxisA: 8, AxisB: 4},
		"SES":               {AxisA: 4, AxisB: 8},
		"HGGSP":             {AxisA: 3, AxisB: 7},
		"Biology-Geology":   {AxisA: 6, AxisB: 3},
		"Arts":              {AxisA: 1, AxisB: 9},
		"Management":        {AxisA: 2, AxisB: 10},
	},
	FieldElective: {
		"Maths expertes":     {AxisA: 8, AxisB: 1},
		"Maths complement":   {AxisA: 5, AxisB: 2},
		"DGEMC":              {AxisA: 2, AxisB: 5},
		"Arts complementary": {AxisA: 0, AxisB: 6},
	},
	FieldEnglishLevel: {
		"A2": {AxisA: 1, AxisB: 1},
		"B1": {AxisA: 2, AxisB: 2},
		"B2": {AxisA: 3, AxisB: 4},
		"C1": {AxisA: 4, AxisB: 6},
	},
	FieldObjective: {
		"long-studies":     {AxisA: 10, AxisB: 2},
		"entrepreneurship": {AxisA: 2, AxisB: 12},
		"quick-job":        {AxisA: 1, AxisB: 6},
		"undecided":        {AxisA: 2, AxisB: 2},
	},
}
