package labelplace

import (
	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Mode names one first-pass placement attempt relative to a label's anchor.
// Each mode maps to a band offset from the home band and a horizontal
// alignment; the mapping is fixed at compile time.
type Mode int

const (
	ModeLeft Mode = iota + 1
	ModeRight
	ModeTop
	ModeBottom
	ModeTopLeft
	ModeTopRight
	ModeBottomLeft
	ModeBottomRight
)

var modeNames = map[Mode]string{
	ModeLeft:        "left",
	ModeRight:       "right",
	ModeTop:         "top",
	ModeBottom:      "bottom",
	ModeTopLeft:     "top-left",
	ModeTopRight:    "top-right",
	ModeBottomLeft:  "bottom-left",
	ModeBottomRight: "bottom-right",
}

// String returns the mode's strategy-file name.
func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// placement returns the band offset and alignment the mode stands for.
func (m Mode) placement() (bandOffset int, align XAlign) {
	switch m {
	case ModeLeft:
		return 0, XAlignLeftToAnchor
	case ModeRight:
		return 0, XAlignRightToAnchor
	case ModeTop:
		return -1, XAlignCenter
	case ModeBottom:
		return 1, XAlignCenter
	case ModeTopLeft:
		return -1, XAlignLeftToAnchor
	case ModeTopRight:
		return -1, XAlignRightToAnchor
	case ModeBottomLeft:
		return 1, XAlignLeftToAnchor
	case ModeBottomRight:
		return 1, XAlignRightToAnchor
	}
	return 0, XAlignCenter
}

// ParseMode resolves a strategy-file mode name. Unknown names are rejected.
func ParseMode(name string) (Mode, error) {
	for m, s := range modeNames {
		if s == name {
			return m, nil
		}
	}
	return 0, &UnknownModeError{Kind: "placement mode", Name: name}
}

// UnmarshalYAML decodes a mode from its name.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// MarshalYAML encodes a mode as its name.
func (m Mode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// XAlign selects where a label's centre sits horizontally relative to the
// anchor before any range clamping.
type XAlign int

const (
	// XAlignCenter centres the label on the anchor.
	XAlignCenter XAlign = iota
	// XAlignLeftToAnchor places the label to the left, its right edge at
	// the anchor.
	XAlignLeftToAnchor
	// XAlignRightToAnchor places the label to the right, its left edge at
	// the anchor.
	XAlignRightToAnchor
)

var xAlignNames = map[XAlign]string{
	XAlignCenter:        "centre",
	XAlignLeftToAnchor:  "left-to-anchor",
	XAlignRightToAnchor: "right-to-anchor",
}

func (a XAlign) String() string {
	if s, ok := xAlignNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseXAlign resolves an alignment name. "center" is accepted as a spelling
// of "centre".
func ParseXAlign(name string) (XAlign, error) {
	if name == "center" {
		return XAlignCenter, nil
	}
	for a, s := range xAlignNames {
		if s == name {
			return a, nil
		}
	}
	return 0, &UnknownModeError{Kind: "x alignment", Name: name}
}

// UnmarshalYAML decodes an alignment from its name.
func (a *XAlign) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	align, err := ParseXAlign(s)
	if err != nil {
		return err
	}
	*a = align
	return nil
}

// MarshalYAML encodes an alignment as its name.
func (a XAlign) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// SweepDirection sets which way the sweep pass scans from the anchor.
type SweepDirection int

const (
	// SweepToRight steps the candidate X rightward.
	SweepToRight SweepDirection = iota
	// SweepToLeft steps the candidate X leftward.
	SweepToLeft
)

var sweepNames = map[SweepDirection]string{
	SweepToRight: "sweep-to-right",
	SweepToLeft:  "sweep-to-left",
}

func (d SweepDirection) String() string {
	if s, ok := sweepNames[d]; ok {
		return s
	}
	return "unknown"
}

// ParseSweepDirection resolves a sweep direction name.
func ParseSweepDirection(name string) (SweepDirection, error) {
	for d, s := range sweepNames {
		if s == name {
			return d, nil
		}
	}
	return 0, &UnknownModeError{Kind: "sweep direction", Name: name}
}

// UnmarshalYAML decodes a sweep direction from its name.
func (d *SweepDirection) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dir, err := ParseSweepDirection(s)
	if err != nil {
		return err
	}
	*d = dir
	return nil
}

// MarshalYAML encodes a sweep direction as its name.
func (d SweepDirection) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// OverflowPolicy permits a label to overflow a band edge when the chosen
// available range is flush with that edge but narrower than the label.
type OverflowPolicy int

const (
	OverflowNone OverflowPolicy = iota
	OverflowLeft
	OverflowRight
	OverflowBoth
)

// permitsLeft reports whether overflow past the band's left edge is allowed.
func (p OverflowPolicy) permitsLeft() bool {
	return p == OverflowLeft || p == OverflowBoth
}

// permitsRight reports whether overflow past the band's right edge is allowed.
func (p OverflowPolicy) permitsRight() bool {
	return p == OverflowRight || p == OverflowBoth
}

// Offset shifts a label's effective anchor before placement.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FirstPassConfig configures the simple pass.
type FirstPassConfig struct {
	// Modes is the ordered list of placements to try for each label.
	Modes []Mode `yaml:"modes"`
	// MaxDistance caps how far a placement may sit from the anchor in X.
	// Nil means unbounded. The X bound is measured to the label's edge,
	// not its centre; see Strategy.StrictDistance. The Y component is not
	// applied in the simple pass.
	MaxDistance *Distance `yaml:"maxDistance"`
	// Offset shifts the effective anchor for every attempt.
	Offset *Offset `yaml:"offset"`
	// Overflow permits placement past flush band edges.
	Overflow OverflowPolicy `yaml:"-"`
}

// SweepConfig configures the sweep pass.
type SweepConfig struct {
	// Horizontal sets the scan direction.
	Horizontal SweepDirection `yaml:"horizontal"`
	// VerticalSearch lists band offsets from the home band in the order
	// they are tried at each step, e.g. [0, -1, 1, -2, 2] for ping-pong.
	VerticalSearch []int `yaml:"verticalSearch"`
	// StepFactor scales the sweep step: step = StepFactor * label width.
	StepFactor float64 `yaml:"stepFactor"`
	// MaxIterations caps the number of x-steps. Zero means the default
	// of 20.
	MaxIterations int `yaml:"maxIterations"`
	// MaxDistance limits the sweep. A candidate band whose Y lies further
	// than MaxDistance.Y from the anchor is skipped; the X bound is
	// measured from each swept candidate X, not from the anchor.
	MaxDistance *Distance `yaml:"maxDistance"`
	// Offset shifts the effective anchor for every attempt.
	Offset *Offset `yaml:"offset"`
	// XAlign aligns the label against each swept candidate X.
	XAlign XAlign `yaml:"xAlign"`
	// Overflow permits placement past flush band edges.
	Overflow OverflowPolicy `yaml:"-"`
}

// Strategy directs the resolver: which placements the simple pass attempts,
// and how the sweep pass scans for the leftovers.
type Strategy struct {
	FirstPass FirstPassConfig `yaml:"firstPass"`
	Sweep     SweepConfig     `yaml:"sweep"`
	// StrictDistance measures the MaxDistance X bound to the label's
	// centre instead of its edge, removing the half-width slack the
	// default bound deliberately allows.
	StrictDistance bool `yaml:"strictDistance"`
}

// DefaultSweepIterations is the sweep pass's x-step cap when the strategy
// leaves MaxIterations unset.
const DefaultSweepIterations = 20

// DefaultStrategy places to the right then left of the anchor, falling back
// to the neighbouring bands, and sweeps rightward with a ping-pong vertical
// search.
func DefaultStrategy() Strategy {
	return Strategy{
		FirstPass: FirstPassConfig{
			Modes: []Mode{ModeRight, ModeLeft, ModeTopRight, ModeBottomRight, ModeTopLeft, ModeBottomLeft},
		},
		Sweep: SweepConfig{
			Horizontal:     SweepToRight,
			VerticalSearch: []int{0, -1, 1, -2, 2},
			StepFactor:     1,
			MaxIterations:  DefaultSweepIterations,
			XAlign:         XAlignCenter,
		},
	}
}

// withDefaults fills unset fields from DefaultStrategy.
func (s Strategy) withDefaults() (Strategy, error) {
	if err := mergo.Merge(&s, DefaultStrategy()); err != nil {
		return s, err
	}
	return s, nil
}

// validate rejects parameters outside their legal domain. Call after
// withDefaults.
func (s Strategy) validate() error {
	if len(s.FirstPass.Modes) == 0 {
		return &InvalidStrategyError{Field: "firstPass.modes", Reason: "must not be empty"}
	}
	for _, m := range s.FirstPass.Modes {
		if _, ok := modeNames[m]; !ok {
			return &UnknownModeError{Kind: "placement mode", Name: m.String()}
		}
	}
	if _, ok := sweepNames[s.Sweep.Horizontal]; !ok {
		return &UnknownModeError{Kind: "sweep direction", Name: s.Sweep.Horizontal.String()}
	}
	if _, ok := xAlignNames[s.Sweep.XAlign]; !ok {
		return &UnknownModeError{Kind: "x alignment", Name: s.Sweep.XAlign.String()}
	}
	if s.Sweep.StepFactor <= 0 {
		return &InvalidStrategyError{Field: "sweep.stepFactor", Reason: "must be positive"}
	}
	if s.Sweep.MaxIterations < 0 {
		return &InvalidStrategyError{Field: "sweep.maxIterations", Reason: "must be >= 0"}
	}
	if len(s.Sweep.VerticalSearch) == 0 {
		return &InvalidStrategyError{Field: "sweep.verticalSearch", Reason: "must not be empty"}
	}
	return nil
}

// ParseStrategy decodes a strategy from YAML, fills unset fields from
// DefaultStrategy, and validates the result. Unknown mode, alignment, and
// direction names are rejected at this boundary.
//
// Example strategy file:
//
//	firstPass:
//	  modes: [right, left, top-right, bottom-right]
//	  maxDistance: {x: 120, y: 60}
//	sweep:
//	  horizontal: sweep-to-right
//	  verticalSearch: [0, -1, 1]
//	  stepFactor: 0.5
//	  xAlign: centre
func ParseStrategy(data []byte) (Strategy, error) {
	var s Strategy
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Strategy{}, err
	}
	s, err := s.withDefaults()
	if err != nil {
		return Strategy{}, err
	}
	if err := s.validate(); err != nil {
		return Strategy{}, err
	}
	return s, nil
}
