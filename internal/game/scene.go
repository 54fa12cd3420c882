package game

import "github.com/Garsondee/Hoop-Sense/internal/physics"

// Scene is the in-memory Renderer. It keeps every live proxy and is drawn by
// Scene.Draw; tests use it without ever drawing.
type Scene struct {
	proxies []*sceneProxy
	dirty   bool // a proxy was removed since the last compact
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

type sceneProxy struct {
	scene   *Scene
	spec    ProxySpec
	pos     physics.Vec3
	visible bool
	removed bool
}

// NewProxy implements Renderer.
func (sc *Scene) NewProxy(spec ProxySpec, at physics.Vec3) Proxy {
	p := &sceneProxy{scene: sc, spec: spec, pos: at, visible: !spec.Hidden}
	sc.proxies = append(sc.proxies, p)
	return p
}

func (p *sceneProxy) SetPosition(v physics.Vec3) { p.pos = v }
func (p *sceneProxy) Position() physics.Vec3     { return p.pos }
func (p *sceneProxy) SetVisible(v bool)          { p.visible = v }
func (p *sceneProxy) Visible() bool              { return p.visible && !p.removed }

func (p *sceneProxy) Remove() {
	if p.removed {
		return
	}
	p.removed = true
	p.scene.dirty = true
}

func (sc *Scene) compact() {
	if !sc.dirty {
		return
	}
	kept := sc.proxies[:0]
	for _, p := range sc.proxies {
		if !p.removed {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(sc.proxies); i++ {
		sc.proxies[i] = nil
	}
	sc.proxies = kept
	sc.dirty = false
}

// Len returns the number of live proxies.
func (sc *Scene) Len() int {
	sc.compact()
	return len(sc.proxies)
}

// VisibleCount returns the number of live proxies currently shown.
func (sc *Scene) VisibleCount() int {
	sc.compact()
	n := 0
	for _, p := range sc.proxies {
		if p.visible {
			n++
		}
	}
	return n
}

// CountKind returns the number of live proxies of kind k.
func (sc *Scene) CountKind(k ProxyKind) int {
	sc.compact()
	n := 0
	for _, p := range sc.proxies {
		if p.spec.Kind == k {
			n++
		}
	}
	return n
}
