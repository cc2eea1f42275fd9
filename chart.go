package barchart

import (
	"fmt"
	"image/color"
	"time"

	"github.com/rs/zerolog"

	"github.com/vdobler/barchart/anim"
	"github.com/vdobler/barchart/surface"
)

// DefaultSpeed is the animation duration of a chart without WithSpeed.
const DefaultSpeed = 400 * time.Millisecond

// Chart is a column chart drawn onto a surface.Canvas. Each call to Update
// is one re-render pass: scales are trained on the new data, every value
// is drawn by its point view, and the views of values which are gone are
// disposed. The chart does not tick its animator; the host does that.
type Chart struct {
	// Theme supplies styles for series without Stroke or Fill and the
	// label color and format.
	Theme Theme

	// Padding is the distance in pixels between the canvas border and
	// the plotting region.
	Padding float64

	// Width is the fraction of a category covered by its columns.
	Width float64

	area     *surface.Canvas
	speed    time.Duration
	animator *anim.Animator
	log      zerolog.Logger
	newView  func(c *Chart) PointView

	scales [2][]*Scale // x and y scales by index
	views  map[string]PointView
	points map[string]*Point // last point drawn per view
}

var _ ChartContext = (*Chart)(nil)

// Option configures a Chart.
type Option func(*Chart)

// WithSpeed sets the duration of every point animation. Zero makes all
// changes immediate.
func WithSpeed(d time.Duration) Option {
	return func(c *Chart) { c.speed = d }
}

// WithLogger sets the logger of the chart and of its animator.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Chart) { c.log = log }
}

// WithTheme sets the chart's theme.
func WithTheme(t Theme) Option {
	return func(c *Chart) { c.Theme = t }
}

// WithPointView makes the chart draw values with views from newView
// instead of rounded columns.
func WithPointView(newView func(c *Chart) PointView) Option {
	return func(c *Chart) { c.newView = newView }
}

// NewChart returns an empty chart drawing onto area. A nil area is
// accepted with a warning but every point fails to draw.
func NewChart(area *surface.Canvas, opts ...Option) *Chart {
	c := &Chart{
		Theme:   DefaultTheme,
		Padding: 20,
		area:    area,
		speed:   DefaultSpeed,
		log:     zerolog.Nop(),
		newView: RoundedColumns,
		views:   make(map[string]PointView),
		points:  make(map[string]*Point),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.animator = anim.NewAnimator(anim.WithLogger(c.log))
	if area == nil {
		c.log.Warn().Msg("Chart has no draw area")
	}
	return c
}

// RoundedColumns returns a column point view with a Rectangle and a
// TextLabel styled by the theme of c.
func RoundedColumns(c *Chart) PointView {
	col, format := c.Theme.Label()
	return NewColumnPointView(
		func() *Rectangle {
			return &Rectangle{Box: Box{StrokeWidth: 1}}
		},
		func() *TextLabel {
			l := NewTextLabel(format)
			l.Color = col
			return l
		})
}

// SquareColumns is like RoundedColumns with Boxes.
func SquareColumns(c *Chart) PointView {
	col, format := c.Theme.Label()
	return NewColumnPointView(
		func() *Box {
			return &Box{StrokeWidth: 1}
		},
		func() *TextLabel {
			l := NewTextLabel(format)
			l.Color = col
			return l
		})
}

// -------------------------------------------------------------------------
// ChartContext

// DrawArea implements ChartContext.
func (c *Chart) DrawArea() Surface {
	if c.area == nil {
		return nil
	}
	return c.area
}

// AnimationsSpeed implements ChartContext.
func (c *Chart) AnimationsSpeed() time.Duration { return c.speed }

// Animator implements ChartContext.
func (c *Chart) Animator() *anim.Animator { return c.animator }

// Dimension implements ChartContext.
func (c *Chart) Dimension(kind AxisKind, index int) Axis {
	if kind != XAxis && kind != YAxis {
		return nil
	}
	scales := c.scales[kind]
	if index < 0 || index >= len(scales) {
		return nil
	}
	return scales[index]
}

// Scale returns the scale of the given kind and index, nil if unknown.
func (c *Chart) Scale(kind AxisKind, index int) *Scale {
	if s, ok := c.Dimension(kind, index).(*Scale); ok {
		return s
	}
	return nil
}

// -------------------------------------------------------------------------
// Re-render pass

// Key identifies the view of value index in the named series.
func Key(series string, index int) string {
	return fmt.Sprintf("%s/%d", series, index)
}

// View returns the view drawing the value with key.
func (c *Chart) View(key string) (PointView, bool) {
	v, ok := c.views[key]
	return v, ok
}

// Keys returns the keys of all visible values in ascending order.
func (c *Chart) Keys() []string {
	keys := NewSet[string]()
	for k := range c.views {
		keys.Add(k)
	}
	return Sorted(keys)
}

// Tick advances all point animations by dt.
func (c *Chart) Tick(dt time.Duration) { c.animator.Tick(dt) }

// Update draws series. Values present in the last pass are moved to their
// new place, new ones grow out of their baseline and missing ones shrink
// into it. Errors of single views are logged and do not stop the pass.
func (c *Chart) Update(series ...Series) {
	resolved := c.resolve(series)
	names := c.seriesKeys(resolved)
	c.train(resolved)

	seen := NewSet[string]()
	for xi := range c.scales[XAxis] {
		var group []*Series
		var keys []string
		for n, s := range resolved {
			if s.ScalesAt[0] == xi {
				group = append(group, s)
				keys = append(keys, names[n])
			}
		}
		layout := ColumnLayout{X: c.scales[XAxis][xi], Y: c.scales[YAxis], Width: c.Width}
		models := layout.Layout(group)
		for si, s := range group {
			for i, v := range s.Values {
				key := Key(keys[si], i)
				seen.Add(key)
				c.draw(key, &Point{
					Index:      i,
					Coordinate: Point2D{X: float64(i), Y: v},
					ViewModel:  models[si][i],
					Series:     s,
					Chart:      c,
				})
			}
		}
	}

	gone := NewSet(c.Keys()...)
	gone.Remove(seen)
	for _, key := range Sorted(gone) {
		view := c.views[key]
		if err := view.Dispose(c); err != nil {
			c.log.Warn().Err(err).Str("point", key).Msg("Cannot dispose point")
			if d, ok := view.(Detacher); ok {
				if err := d.Detach(c); err != nil {
					c.log.Error().Err(err).Str("point", key).Msg("Cannot detach point")
				}
			}
		}
		delete(c.views, key)
		delete(c.points, key)
	}
	c.log.Debug().Int("points", len(c.views)).Int("disposed", len(gone)).
		Int("animating", c.animator.Active()).Msg("Chart updated")
}

func (c *Chart) draw(key string, p *Point) {
	view, ok := c.views[key]
	if !ok {
		view = c.newView(c)
		c.views[key] = view
	}
	previous := c.points[key]
	if err := view.Draw(p, previous); err != nil {
		c.log.Error().Err(err).Str("point", key).Msg("Cannot draw point")
		if view.State() == Uninitialized {
			delete(c.views, key)
		}
		return
	}
	c.points[key] = p

	if err := view.DrawLabel(p, c.labelPosition(p)); err != nil {
		c.log.Error().Err(err).Str("point", key).Msg("Cannot draw label")
	}
}

// labelPosition centers the label of p above its column, below it for
// negative values.
func (c *Chart) labelPosition(p *Point) Point2D {
	_, format := c.Theme.Label()
	w, h := MeasureText(LabelText(format, p.PackAll()))
	vm := p.ViewModel
	at := Point2D{X: vm.Left + vm.Width/2 - w/2, Y: vm.Top - h - 2}
	if p.Coordinate.Y < 0 {
		at.Y = vm.Top + vm.Height + 2
	}
	return at
}

// seriesKeys names the views of each series. Unnamed series and repeated
// names are keyed by their position instead.
func (c *Chart) seriesKeys(series []*Series) []string {
	keys := make([]string, len(series))
	used := NewSet[string]()
	for i, s := range series {
		name := s.Name
		if name == "" || used.Contains(name) {
			if name != "" {
				c.log.Warn().Str("series", name).Int("position", i).
					Msg("Duplicate series name, keyed by position")
			}
			name = fmt.Sprintf("#%d", i)
			for used.Contains(name) {
				name += "'"
			}
		}
		used.Add(name)
		keys[i] = name
	}
	return keys
}

// resolve copies series and fills in missing styles from the theme.
func (c *Chart) resolve(series []Series) []*Series {
	stroke, fill := c.Theme.BarColors()
	resolved := make([]*Series, len(series))
	for i := range series {
		s := series[i]
		s.Values = append([]float64(nil), s.Values...)
		if s.Stroke == nil {
			s.Stroke = stroke
		}
		if s.Fill == nil {
			s.Fill = fill
		}
		resolved[i] = &s
	}
	return resolved
}

// train sets up and trains all scales used by series.
func (c *Chart) train(series []*Series) {
	need := [2]int{1, 1}
	for _, s := range series {
		for k := range need {
			if s.ScalesAt[k] >= need[k] {
				need[k] = s.ScalesAt[k] + 1
			}
		}
	}
	for k, aes := range [2]string{"x", "y"} {
		for len(c.scales[k]) < need[k] {
			s := NewScale(aes)
			if aes == "y" {
				s.Expand = 0.05
			}
			c.scales[k] = append(c.scales[k], s)
		}
		for _, s := range c.scales[k] {
			s.Reset()
		}
	}

	for xi, sx := range c.scales[XAxis] {
		var group []*Series
		for _, s := range series {
			if s.ScalesAt[0] == xi {
				group = append(group, s)
			}
		}
		ColumnLayout{X: sx, Y: c.scales[YAxis]}.TrainColumns(group)
	}

	w, h := c.size()
	for _, s := range c.scales[XAxis] {
		s.PixelMin, s.PixelMax = c.Padding, w-c.Padding
		s.Prepare()
	}
	for _, s := range c.scales[YAxis] {
		s.PixelMin, s.PixelMax = h-c.Padding, c.Padding
		s.Prepare()
	}
}

func (c *Chart) size() (w, h float64) {
	if c.area == nil {
		return 0, 0
	}
	return c.area.Width, c.area.Height
}

// -------------------------------------------------------------------------
// Styles

// Palette returns a series fill for each color name or "#rrggbb" value.
func Palette(names ...string) []color.Color {
	cols := make([]color.Color, len(names))
	for i, n := range names {
		cols[i] = String2Color(n)
	}
	return cols
}
