package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/lattice/ecs"
)

func NewComponentInspectorPanel() ComponentInspectorPanel {
	return ComponentInspectorPanel{}
}

func (ci *ComponentInspectorPanel) Render(world *ecs.Coordinator, selected *ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntity = selected

	if ci.selectedEntity == nil {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity := *ci.selectedEntity
	types, err := world.EntityComponentTypes(entity)
	if err != nil {
		imgui.Text(fmt.Sprintf("Entity %d is no longer alive", entity))
		imgui.End()
		return
	}

	sig, _ := world.Signature(entity)
	imgui.Text(fmt.Sprintf("Entity ID: %d", entity))
	imgui.Text(fmt.Sprintf("Signature: 0x%X", signatureBits(sig)))
	imgui.Separator()

	for _, compType := range types {
		component, err := world.ComponentByType(entity, compType)
		if err != nil {
			continue
		}

		if imgui.TreeNodeStr(compType.String()) {
			ci.renderComponent(component, compType)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent draws editable widgets for every exported field. The
// component arrives as a pointer into its packed store, so edits write
// straight through; the pointer must not be retained past this frame.
func (ci *ComponentInspectorPanel) renderComponent(component any, compType reflect.Type) {
	val := reflect.ValueOf(component)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	fields := globalReflectionCache.fieldsOf(compType)

	for _, field := range fields {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}

		ci.renderField(field.Name, fieldVal)
	}
}

func (ci *ComponentInspectorPanel) renderField(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	editable := val.CanSet()

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && editable {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && editable && v >= 0 {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && editable {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && editable {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && editable {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			nestedFields := globalReflectionCache.fieldsOf(val.Type())
			for _, nf := range nestedFields {
				nestedVal := val.Field(nf.Index)
				if nf.IsPointer {
					if nestedVal.IsNil() {
						imgui.Text(fmt.Sprintf("%s: nil", nf.Name))
						continue
					}
					nestedVal = nestedVal.Elem()
				}
				ci.renderField(nf.Name, nestedVal)
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}
