package encounter

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/chunin-dm/internal/engine"
	"github.com/KirkDiggler/chunin-dm/internal/entities"
	"github.com/KirkDiggler/chunin-dm/internal/errors"
)

// Names of the tables and scenes the forest relies on
const (
	TableForestPatrol = "forest_patrol"

	SceneTeamDosu      = "team_dosu"
	SceneOrochimaru    = "orochimaru"
	SceneKabuto        = "kabuto"
	SceneGaaraPressure = "gaara_pressure"
)

//go:embed default_tables.yaml
var defaultTablesYAML []byte

// Tables is a set of encounter tables and the named scenes they share.
//
// Example:
//
//	tables:
//	  forest_patrol:
//	    die: 6
//	    outcomes:
//	      - faces: [1, 2]
//	        title: 同村考生
//	        effects:
//	          - narrate: 互换补给。
//	          - heal: {amount: 1}
//	scenes:
//	  kabuto:
//	    - energy: 3
type Tables struct {
	Tables map[string]*Table   `yaml:"tables"`
	Scenes map[string][]Effect `yaml:"scenes"`
}

// Table maps each face of a die to exactly one outcome
type Table struct {
	Name     string    `yaml:"name,omitempty"`
	Die      int       `yaml:"die"`
	Outcomes []Outcome `yaml:"outcomes"`
}

// Outcome is the branch taken when one of its faces comes up
type Outcome struct {
	Faces   []int    `yaml:"faces"`
	Title   string   `yaml:"title"`
	Effects []Effect `yaml:"effects"`
}

// Effect is one step of an outcome or scene. Exactly one field is set.
type Effect struct {
	Narrate     string             `yaml:"narrate,omitempty"`
	Check       *CheckEffect       `yaml:"check,omitempty"`
	Damage      *DamageEffect      `yaml:"damage,omitempty"`
	Heal        *HealEffect        `yaml:"heal,omitempty"`
	Energy      int                `yaml:"energy,omitempty"`
	SpendEnergy *SpendEnergyEffect `yaml:"spend_energy,omitempty"`
	Fatigue     int                `yaml:"fatigue,omitempty"`
	Token       string             `yaml:"token,omitempty"`
	Bonus       bool               `yaml:"bonus,omitempty"`
	Scene       string             `yaml:"scene,omitempty"`
}

// CheckEffect rolls an ability check and branches on it
type CheckEffect struct {
	Ability entities.Ability `yaml:"ability"`
	DC      int              `yaml:"dc"`

	// Proficiency adds the character's proficiency bonus. Defaults to true.
	Proficiency *bool `yaml:"proficiency,omitempty"`

	// Reroll makes the check eligible for the bonus reroll.
	Reroll bool   `yaml:"reroll,omitempty"`
	Label  string `yaml:"label,omitempty"`

	OnSuccess []Effect `yaml:"on_success,omitempty"`
	OnFailure []Effect `yaml:"on_failure,omitempty"`
}

// DamageEffect rolls damage against HP. Then runs when the damage reaches
// AtLeast, or always when AtLeast is zero.
type DamageEffect struct {
	Dice    string   `yaml:"dice"`
	Label   string   `yaml:"label,omitempty"`
	AtLeast int      `yaml:"at_least,omitempty"`
	Then    []Effect `yaml:"then,omitempty"`
}

// HealEffect restores HP from a dice roll or a fixed amount
type HealEffect struct {
	Dice   string `yaml:"dice,omitempty"`
	Amount int    `yaml:"amount,omitempty"`
}

// SpendEnergyEffect spends energy if the pool covers it
type SpendEnergyEffect struct {
	Amount    int      `yaml:"amount"`
	Then      []Effect `yaml:"then,omitempty"`
	Otherwise []Effect `yaml:"otherwise,omitempty"`
}

// LoadTables decodes and validates tables from r. Unknown keys are
// rejected.
func LoadTables(r io.Reader) (*Tables, error) {
	t, err := decodeTables(r)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadFile loads tables from a YAML file
func LoadFile(path string) (*Tables, error) {
	return loadFile(path, LoadTables)
}

// LoadOverrides decodes a YAML file that may refer to scenes it does not
// define. It is validated only once merged over a complete set.
func LoadOverrides(path string) (*Tables, error) {
	return loadFile(path, decodeTables)
}

func loadFile(path string, load func(io.Reader) (*Tables, error)) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to open encounter tables %q", path)
	}
	defer f.Close()

	t, err := load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load encounter tables %q", path)
	}
	return t, nil
}

func decodeTables(r io.Reader) (*Tables, error) {
	var t Tables
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode encounter tables")
	}
	t.fillNames()
	return &t, nil
}

// DefaultTables returns the embedded tables
func DefaultTables() (*Tables, error) {
	return LoadTables(bytes.NewReader(defaultTablesYAML))
}

// Merge returns a new set with other's tables and scenes replacing
// same-named entries of t. The result is validated.
func (t *Tables) Merge(other *Tables) (*Tables, error) {
	merged := &Tables{
		Tables: make(map[string]*Table, len(t.Tables)),
		Scenes: make(map[string][]Effect, len(t.Scenes)),
	}
	for _, src := range []*Tables{t, other} {
		if src == nil {
			continue
		}
		for name, table := range src.Tables {
			merged.Tables[name] = table
		}
		for name, scene := range src.Scenes {
			merged.Scenes[name] = scene
		}
	}
	merged.fillNames()

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Table returns the named table
func (t *Tables) Table(name string) (*Table, error) {
	table, ok := t.Tables[name]
	if !ok || table == nil {
		return nil, errors.NotFoundf("encounter table not found: %s", name)
	}
	return table, nil
}

// Scene returns the named scene
func (t *Tables) Scene(name string) ([]Effect, error) {
	scene, ok := t.Scenes[name]
	if !ok {
		return nil, errors.NotFoundf("scene not found: %s", name)
	}
	return scene, nil
}

func (t *Tables) fillNames() {
	for name, table := range t.Tables {
		if table != nil && table.Name == "" {
			table.Name = name
		}
	}
}

// Validate checks that every table covers its die exactly once and that
// every effect is well formed.
func (t *Tables) Validate() error {
	vb := errors.NewValidationBuilder()

	for _, name := range sortedKeys(t.Tables) {
		table := t.Tables[name]
		path := "tables." + name
		if table == nil {
			vb.Field(path, "is empty")
			continue
		}
		table.validate(path, t, vb)
	}

	for _, name := range sortedKeys(t.Scenes) {
		validateEffects("scenes."+name, t.Scenes[name], t, vb)
	}
	t.validateSceneCycles(vb)

	return vb.Build()
}

func (tb *Table) validate(path string, t *Tables, vb *errors.ValidationBuilder) {
	if tb.Die < 1 {
		errors.ValidatePositive(path+".die", tb.Die, vb)
		return
	}

	seen := make(map[int]int, tb.Die)
	for i, o := range tb.Outcomes {
		opath := fmt.Sprintf("%s.outcomes[%d]", path, i)
		if len(o.Faces) == 0 {
			vb.Field(opath+".faces", "must list at least one face")
		}
		for _, face := range o.Faces {
			if face < 1 || face > tb.Die {
				vb.Fieldf(opath+".faces", "face %d is outside 1..%d", face, tb.Die)
				continue
			}
			if prev, dup := seen[face]; dup {
				vb.Fieldf(opath+".faces", "face %d already covered by outcome %d", face, prev)
				continue
			}
			seen[face] = i
		}
		validateEffects(opath+".effects", o.Effects, t, vb)
	}

	for face := 1; face <= tb.Die; face++ {
		if _, ok := seen[face]; !ok {
			vb.Fieldf(path+".outcomes", "face %d is not covered", face)
		}
	}
}

func validateEffects(path string, effects []Effect, t *Tables, vb *errors.ValidationBuilder) {
	for i, e := range effects {
		epath := fmt.Sprintf("%s[%d]", path, i)
		if n := e.kinds(); n != 1 {
			vb.Fieldf(epath, "must set exactly one effect, got %d", n)
			continue
		}

		switch {
		case e.Check != nil:
			errors.ValidateOneOf(epath+".check.ability", e.Check.Ability, entities.AllAbilities, vb)
			errors.ValidatePositive(epath+".check.dc", e.Check.DC, vb)
			validateEffects(epath+".check.on_success", e.Check.OnSuccess, t, vb)
			validateEffects(epath+".check.on_failure", e.Check.OnFailure, t, vb)
		case e.Damage != nil:
			if _, err := engine.ParseDiceSpec(e.Damage.Dice); err != nil {
				vb.Fieldf(epath+".damage.dice", "malformed dice spec %q", e.Damage.Dice)
			}
			validateEffects(epath+".damage.then", e.Damage.Then, t, vb)
		case e.Heal != nil:
			switch {
			case e.Heal.Dice != "" && e.Heal.Amount != 0:
				vb.Field(epath+".heal", "set dice or amount, not both")
			case e.Heal.Dice != "":
				if _, err := engine.ParseDiceSpec(e.Heal.Dice); err != nil {
					vb.Fieldf(epath+".heal.dice", "malformed dice spec %q", e.Heal.Dice)
				}
			case e.Heal.Amount <= 0:
				vb.Field(epath+".heal", "needs dice or a positive amount")
			}
		case e.SpendEnergy != nil:
			errors.ValidatePositive(epath+".spend_energy.amount", e.SpendEnergy.Amount, vb)
			validateEffects(epath+".spend_energy.then", e.SpendEnergy.Then, t, vb)
			validateEffects(epath+".spend_energy.otherwise", e.SpendEnergy.Otherwise, t, vb)
		case e.Energy < 0:
			vb.Fieldf(epath+".energy", "must be positive, got %d", e.Energy)
		case e.Scene != "":
			if _, ok := t.Scenes[e.Scene]; !ok {
				vb.Fieldf(epath+".scene", "unknown scene %q", e.Scene)
			}
		}
	}
}

func (e Effect) kinds() int {
	n := 0
	for _, set := range []bool{
		e.Narrate != "",
		e.Check != nil,
		e.Damage != nil,
		e.Heal != nil,
		e.Energy != 0,
		e.SpendEnergy != nil,
		e.Fatigue != 0,
		e.Token != "",
		e.Bonus,
		e.Scene != "",
	} {
		if set {
			n++
		}
	}
	return n
}

// validateSceneCycles rejects scenes that inline themselves
func (t *Tables) validateSceneCycles(vb *errors.ValidationBuilder) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(t.Scenes))

	var visit func(name string) bool
	visit = func(name string) bool {
		switch state[name] {
		case visiting:
			return false
		case done:
			return true
		}
		state[name] = visiting
		for _, ref := range sceneRefs(t.Scenes[name]) {
			if _, ok := t.Scenes[ref]; !ok {
				continue
			}
			if !visit(ref) {
				return false
			}
		}
		state[name] = done
		return true
	}

	for _, name := range sortedKeys(t.Scenes) {
		if state[name] == unvisited && !visit(name) {
			vb.Field("scenes."+name, "scene reference cycle")
		}
	}
}

func sceneRefs(effects []Effect) []string {
	var refs []string
	for _, e := range effects {
		switch {
		case e.Scene != "":
			refs = append(refs, e.Scene)
		case e.Check != nil:
			refs = append(refs, sceneRefs(e.Check.OnSuccess)...)
			refs = append(refs, sceneRefs(e.Check.OnFailure)...)
		case e.Damage != nil:
			refs = append(refs, sceneRefs(e.Damage.Then)...)
		case e.SpendEnergy != nil:
			refs = append(refs, sceneRefs(e.SpendEnergy.Then)...)
			refs = append(refs, sceneRefs(e.SpendEnergy.Otherwise)...)
		}
	}
	return refs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// outcomeFor returns the outcome covering face
func (tb *Table) outcomeFor(face int) (*Outcome, bool) {
	for i := range tb.Outcomes {
		for _, f := range tb.Outcomes[i].Faces {
			if f == face {
				return &tb.Outcomes[i], true
			}
		}
	}
	return nil, false
}
