package renderer

import (
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/shadergrid/internal/engine/material"
	"github.com/Faultbox/shadergrid/internal/engine/shader"
	"github.com/Faultbox/shadergrid/internal/uniform"
)

// setUniforms uploads every material cell the program uses. Samplers take
// texture units in name order.
func (r *Renderer) setUniforms(p *shader.Program, m *material.Material) {
	names := make([]string, 0, len(m.Uniforms))
	for name := range m.Uniforms {
		names = append(names, name)
	}
	sort.Strings(names)

	unit := int32(0)
	for _, name := range names {
		loc := p.Uniform(name)
		if loc < 0 {
			continue
		}
		u := m.Uniforms[name]
		switch u.Kind {
		case uniform.KindFloat:
			gl.Uniform1f(loc, u.Data[0])
		case uniform.KindVec2:
			gl.Uniform2f(loc, u.Data[0], u.Data[1])
		case uniform.KindVec3, uniform.KindColor:
			gl.Uniform3f(loc, u.Data[0], u.Data[1], u.Data[2])
		case uniform.KindSampler:
			gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
			gl.BindTexture(gl.TEXTURE_2D, r.textures.get(u.Texture))
			gl.Uniform1i(loc, unit)
			unit++
		default:
			r.log.Warn("skipping uniform of unknown kind", zap.String("uniform", name))
		}
	}
}
