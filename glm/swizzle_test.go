package glm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var components = []Component{ComponentX, ComponentY, ComponentZ, ComponentW}

// selections returns every ordered selection of length components taken
// from the first width components.
func selections(width, length int) [][]Component {
	if length == 0 {
		return [][]Component{nil}
	}

	var result [][]Component
	for _, first := range components[:width] {
		for _, rest := range selections(width, length-1) {
			result = append(result, append([]Component{first}, rest...))
		}
	}

	return result
}

func swizzleName(sel []Component) string {
	var name strings.Builder
	for _, c := range sel {
		name.WriteString(c.String())
	}

	return name.String()
}

// runtimeSwizzle dispatches to the Swizzle2/3/4 accessor of v.
func runtimeSwizzle(v any, sel []Component) any {
	args := make([]reflect.Value, len(sel))
	for idx, c := range sel {
		args[idx] = reflect.ValueOf(c)
	}

	method := reflect.ValueOf(v).MethodByName("Swizzle" + string(rune('0'+len(sel))))
	return method.Call(args)[0].Interface()
}

func TestSwizzles(t *testing.T) {
	tests := []struct {
		name  string
		value any
		width int
	}{
		{"Vec2", Vec2Of(1, 2), 2},
		{"Vec3", Vec3Of(1, 2, 3), 3},
		{"Vec4", Vec4Of(1, 2, 3, 4), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := 0

			for length := 2; length <= 4; length++ {
				for _, sel := range selections(tt.width, length) {
					name := swizzleName(sel)

					method := reflect.ValueOf(tt.value).MethodByName(name)
					require.Truef(t, method.IsValid(), "missing swizzle %s.%s", tt.name, name)

					actual := method.Call(nil)[0].Interface()
					assert.Equalf(t, runtimeSwizzle(tt.value, sel), actual, "swizzle %s", name)

					count++
				}
			}

			w := tt.width
			assert.Equal(t, w*w+w*w*w+w*w*w*w, count)
		})
	}
}

func TestSwizzleExamples(t *testing.T) {
	v2 := Vec2Of(1, 2)
	assert.Equal(t, Vec2Of(2, 1), v2.YX())
	assert.Equal(t, Vec3Of(1, 2, 2), v2.XYY())
	assert.Equal(t, Vec4Of(2, 2, 1, 1), v2.YYXX())

	v3 := Vec3Of(1, 2, 3)
	assert.Equal(t, Vec3Of(3, 2, 1), v3.ZYX())
	assert.Equal(t, Vec2Of(3, 1), v3.ZX())
	assert.Equal(t, Vec4Of(1, 2, 3, 3), v3.XYZZ())

	v4 := Vec4Of(1, 2, 3, 4)
	assert.Equal(t, Vec3Of(1, 2, 3), v4.XYZ())
	assert.Equal(t, Vec3Of(2, 1, 3), v4.YXZ())
	assert.Equal(t, Vec2Of(4, 1), v4.WX())
	assert.Equal(t, Vec4Of(4, 3, 2, 1), v4.WZYX())
	assert.Equal(t, v4, v4.XYZW())
}

func TestSwizzleReturnsCopy(t *testing.T) {
	v := Vec3Of(1, 2, 3)
	s := v.XYZ()
	s.X = 10

	assert.Equal(t, Vec3Of(1, 2, 3), v)
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "X", ComponentX.String())
	assert.Equal(t, "W", ComponentW.String())
	assert.Equal(t, "Component(9)", Component(9).String())

	require.PanicsWithValue(t, "glm: component W out of range for Vec3", func() {
		Vec3{}.Swizzle2(ComponentW, ComponentX)
	})
}
