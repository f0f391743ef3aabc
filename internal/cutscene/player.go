package cutscene

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed clips.yaml
var defaultManifestYAML []byte

// Subtitle is a line of text shown from At until the next subtitle.
type Subtitle struct {
	AtMS int    `yaml:"at_ms"`
	Text string `yaml:"text"`
}

// Clip describes a playable clip.
type Clip struct {
	ID         ClipID     `yaml:"id"`
	Name       string     `yaml:"name"`
	DurationMS int        `yaml:"duration_ms"`
	Subtitles  []Subtitle `yaml:"subtitles"`
}

// Duration returns the clip length.
func (c Clip) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// Manifest lists the clips available in the data files.
type Manifest struct {
	Clips []Clip `yaml:"clips"`
}

// ParseManifest decodes and validates a YAML clip manifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cutscene: failed to read manifest: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cutscene: failed to parse manifest: %w", err)
	}
	if err := validateManifest(doc); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("cutscene: failed to parse manifest: %w", err)
	}
	for i := range m.Clips {
		subs := m.Clips[i].Subtitles
		sort.SliceStable(subs, func(a, b int) bool { return subs[a].AtMS < subs[b].AtMS })
	}
	return &m, nil
}

// DefaultManifest returns the embedded clip manifest.
func DefaultManifest() *Manifest {
	var m Manifest
	if err := yaml.Unmarshal(defaultManifestYAML, &m); err != nil {
		return &Manifest{}
	}
	return &m
}

// Lookup returns the clip with the given id.
func (m *Manifest) Lookup(id ClipID) (Clip, bool) {
	for _, c := range m.Clips {
		if c.ID == id {
			return c, true
		}
	}
	return Clip{}, false
}

// ManifestPlayer plays clips as timed subtitle cards. It stands in for the
// video decoder: a clip is loadable when the manifest lists it.
type ManifestPlayer struct {
	manifest *Manifest

	clip        Clip
	loaded      bool
	elapsed     time.Duration
	skipped     bool
	interrupted bool
}

// NewManifestPlayer creates a player over manifest. A nil manifest uses the
// embedded default.
func NewManifestPlayer(manifest *Manifest) *ManifestPlayer {
	if manifest == nil {
		manifest = DefaultManifest()
	}
	return &ManifestPlayer{manifest: manifest}
}

// Load implements Player.
func (p *ManifestPlayer) Load(id ClipID) bool {
	clip, ok := p.manifest.Lookup(id)
	if !ok || clip.DurationMS <= 0 {
		return false
	}
	p.clip = clip
	p.loaded = true
	p.elapsed = 0
	p.skipped = false
	p.interrupted = false
	return true
}

// Unload implements Player. The interrupted flag survives so the sequencer
// can observe it after the clip is released.
func (p *ManifestPlayer) Unload() {
	p.loaded = false
	p.clip = Clip{}
	p.elapsed = 0
}

// Update implements Player.
func (p *ManifestPlayer) Update(elapsed time.Duration) bool {
	if !p.loaded || p.skipped {
		return false
	}
	p.elapsed += elapsed
	return p.elapsed < p.clip.Duration()
}

// Skip implements Player.
func (p *ManifestPlayer) Skip(abandon bool) {
	if !p.loaded {
		return
	}
	p.skipped = true
	if abandon {
		p.interrupted = true
	}
}

// IsInterrupted implements Player.
func (p *ManifestPlayer) IsInterrupted() bool {
	return p.interrupted
}

// Loaded returns the loaded clip.
func (p *ManifestPlayer) Loaded() (Clip, bool) {
	return p.clip, p.loaded
}

// Subtitle returns the subtitle line for the current playback position.
func (p *ManifestPlayer) Subtitle() string {
	if !p.loaded {
		return ""
	}
	text := ""
	for _, s := range p.clip.Subtitles {
		if time.Duration(s.AtMS)*time.Millisecond > p.elapsed {
			break
		}
		text = s.Text
	}
	return text
}

// Progress returns playback progress in [0, 1].
func (p *ManifestPlayer) Progress() float64 {
	if !p.loaded || p.clip.DurationMS <= 0 {
		return 0
	}
	f := float64(p.elapsed) / float64(p.clip.Duration())
	if f > 1 {
		return 1
	}
	return f
}
