package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"softraster/internal/anim"
	"softraster/internal/logging"
	"softraster/internal/mathutil"
	"softraster/internal/pixel"
	"softraster/internal/raster"
	"softraster/internal/sprite"
	"softraster/internal/texture"
)

var (
	ErrUnknownType    = errors.New("unknown primitive type")
	ErrUnknownTexture = errors.New("unknown texture")
	ErrBadGeometry    = errors.New("bad geometry")
)

// Scene is a built description: primitives in draw order plus the
// animations that mutate them over time.
type Scene struct {
	Width, Height int // logical size, before supersampling
	Scale         int
	Background    pixel.Color
	Primitives    []raster.Primitive
	Animator      *anim.Animator
}

// Build resolves textures through res and creates the primitives. Every
// coordinate is multiplied by scale (the supersample factor). A texture
// that fails to load becomes an empty texture, which samples transparent;
// the failure is logged rather than returned.
func Build(d *Description, res texture.Resolver, scale int) (*Scene, error) {
	if scale < 1 {
		scale = 1
	}
	bg := pixel.Black
	if d.Background != "" {
		c, err := pixel.ParseHex(d.Background)
		if err != nil {
			return nil, fmt.Errorf("scene: background: %w", err)
		}
		bg = c
	}

	texs, err := buildTextures(d.Textures, res)
	if err != nil {
		return nil, err
	}

	b := builder{textures: texs, scale: scale, anims: &anim.Animator{}}
	prims := make([]raster.Primitive, 0, len(d.Primitives))
	for i, pd := range d.Primitives {
		p, err := b.primitive(pd)
		if err != nil {
			return nil, fmt.Errorf("scene: primitive %d: %w", i, err)
		}
		prims = append(prims, p)
	}
	logging.Logger().Info("scene built", "primitives", len(prims), "animations", b.anims.Len(), "scale", scale)

	return &Scene{
		Width:      d.Width,
		Height:     d.Height,
		Scale:      scale,
		Background: bg,
		Primitives: prims,
		Animator:   b.anims,
	}, nil
}

func buildTextures(descs map[string]TextureDesc, res texture.Resolver) (map[string]*texture.Texture, error) {
	// Sorted so that warnings come out in a stable order.
	names := make([]string, 0, len(descs))
	for name := range descs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*texture.Texture, len(descs))
	for _, name := range names {
		td := descs[name]
		sm, err := texture.ParseSampleMode(td.Sample)
		if err != nil {
			return nil, fmt.Errorf("scene: texture %q: %w", name, err)
		}
		wm, err := texture.ParseWrapMode(td.Wrap)
		if err != nil {
			return nil, fmt.Errorf("scene: texture %q: %w", name, err)
		}

		var img *texture.Image
		if res != nil {
			file := td.File
			if file == "" {
				file = name
			}
			img, err = res.Resolve(file)
			if err != nil {
				logging.Logger().Warn("scene texture missing, drawing transparent", "texture", name, "err", err)
				img = nil
			}
		}
		out[name] = texture.New(img, texture.WithSampleMode(sm), texture.WithWrapMode(wm))
	}
	return out, nil
}

type builder struct {
	textures map[string]*texture.Texture
	scale    int
	anims    *anim.Animator
}

func (b *builder) primitive(pd PrimitiveDesc) (raster.Primitive, error) {
	switch strings.ToLower(pd.Type) {
	case "point":
		return b.point(pd)
	case "line":
		return b.line(pd)
	case "triangle":
		return b.triangle(pd)
	case "sprite":
		return b.sprite(pd)
	case "image":
		return b.image(pd)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, pd.Type)
}

func (b *builder) texture(name string) (*texture.Texture, error) {
	if name == "" {
		return nil, nil
	}
	t, ok := b.textures[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTexture, name)
	}
	return t, nil
}

// points returns exactly n scaled, rotated positions.
func (b *builder) points(pd PrimitiveDesc, n int) ([]mathutil.Vec2i, error) {
	if len(pd.Points) != n {
		return nil, fmt.Errorf("%w: %s needs %d points, got %d", ErrBadGeometry, pd.Type, n, len(pd.Points))
	}
	out := make([]mathutil.Vec2i, n)
	for i, p := range pd.Points {
		out[i] = mathutil.Vec2i{X: p[0], Y: p[1]}
	}
	if pd.Rotate != 0 {
		rotate(out, pd.Pivot, mathutil.Deg2Rad(pd.Rotate))
	}
	for i := range out {
		out[i] = out[i].Scale(b.scale)
	}
	return out, nil
}

func rotate(pts []mathutil.Vec2i, pivot *[2]float64, rad float64) {
	var c mathutil.Vec2f
	if pivot != nil {
		c = mathutil.Vec2f{X: pivot[0], Y: pivot[1]}
	} else {
		for _, p := range pts {
			c = c.Add(p.Float())
		}
		c = c.Scale(1 / float64(len(pts)))
	}
	for i, p := range pts {
		pts[i] = p.Float().Rotate(c, rad).Round()
	}
}

func parseColor(s string, def pixel.Color) (pixel.Color, error) {
	if s == "" {
		return def, nil
	}
	return pixel.ParseHex(s)
}

func (b *builder) point(pd PrimitiveDesc) (raster.Primitive, error) {
	pts, err := b.points(pd, 1)
	if err != nil {
		return nil, err
	}
	c, err := parseColor(pd.Color, pixel.White)
	if err != nil {
		return nil, err
	}
	return raster.NewPoint(pts[0].X, pts[0].Y, c), nil
}

func (b *builder) line(pd PrimitiveDesc) (raster.Primitive, error) {
	pts, err := b.points(pd, 2)
	if err != nil {
		return nil, err
	}
	c, err := parseColor(pd.Color, pixel.White)
	if err != nil {
		return nil, err
	}
	if !pd.Antialias {
		return raster.NewLine(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, c), nil
	}
	l := raster.NewAntialiasedLine(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, c)
	if l.Background, err = parseColor(pd.LineBackground, pixel.Black); err != nil {
		return nil, err
	}
	return l, nil
}

func (b *builder) triangle(pd PrimitiveDesc) (raster.Primitive, error) {
	pts, err := b.points(pd, 3)
	if err != nil {
		return nil, err
	}
	if len(pd.Colors) != 0 && len(pd.Colors) != 3 {
		return nil, fmt.Errorf("%w: triangle needs 3 colors, got %d", ErrBadGeometry, len(pd.Colors))
	}
	if len(pd.UV) != 0 && len(pd.UV) != 3 {
		return nil, fmt.Errorf("%w: triangle needs 3 uv pairs, got %d", ErrBadGeometry, len(pd.UV))
	}
	flat, err := parseColor(pd.Color, pixel.White)
	if err != nil {
		return nil, err
	}

	var vs [3]raster.Vertex
	for i := range vs {
		vs[i] = raster.Vertex{X: pts[i].X, Y: pts[i].Y, Color: flat}
		if len(pd.Colors) == 3 {
			if vs[i].Color, err = pixel.ParseHex(pd.Colors[i]); err != nil {
				return nil, err
			}
		}
		if len(pd.UV) == 3 {
			vs[i].U, vs[i].V = pd.UV[i][0], pd.UV[i][1]
		}
	}

	tex, err := b.texture(pd.Texture)
	if err != nil {
		return nil, err
	}
	if tex != nil {
		return raster.NewTexturedTriangle(vs[0], vs[1], vs[2], tex), nil
	}
	return raster.NewShadedTriangle(vs[0], vs[1], vs[2]), nil
}

func (b *builder) sprite(pd PrimitiveDesc) (raster.Primitive, error) {
	tex, err := b.texture(pd.Texture)
	if err != nil {
		return nil, err
	}
	s := sprite.New(tex)
	switch len(pd.Rect) {
	case 0:
	case 2:
		s.SetPosition(pd.Rect[0], pd.Rect[1])
	case 4:
		s.SetRect(pd.Rect[0], pd.Rect[1], pd.Rect[2], pd.Rect[3])
	default:
		return nil, fmt.Errorf("%w: sprite rect needs 2 or 4 values, got %d", ErrBadGeometry, len(pd.Rect))
	}
	s.SetRect(s.X*b.scale, s.Y*b.scale, s.Width*b.scale, s.Height*b.scale)
	s.SetUVOffset(pd.UVOffset[0], pd.UVOffset[1])

	if pd.Scroll != nil {
		sc := s.ScrollAnimation(pd.Scroll.U, pd.Scroll.V)
		if pd.Scroll.Rate != 0 {
			sc.SetRate(pd.Scroll.Rate)
		}
		b.anims.Add(sc)
	}
	return s, nil
}

func (b *builder) image(pd PrimitiveDesc) (raster.Primitive, error) {
	pts, err := b.points(pd, 1)
	if err != nil {
		return nil, err
	}
	tex, err := b.texture(pd.Texture)
	if err != nil {
		return nil, err
	}
	if tex == nil {
		return nil, fmt.Errorf("%w: image needs a texture", ErrBadGeometry)
	}
	return raster.NewImageBlit(tex.Image().Scaled(b.scale), pts[0].X, pts[0].Y), nil
}
