package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/slotecs/ecs"
)

func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{selectedEntity: ecs.NoEntity}
}

func (ci *ComponentInspectorComponent) Render(storage *ecs.Storage, selected ecs.Entity) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntity = selected

	if !storage.IsValid(ci.selectedEntity) {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %d", ci.selectedEntity))
	imgui.Separator()

	components := storage.Components()
	for _, k := range storage.ComponentKinds(ci.selectedEntity) {
		value := storage.Component(ci.selectedEntity, k)
		if value == nil {
			continue
		}

		if imgui.TreeNodeStr(components.Name(k)) {
			renderValue(reflect.ValueOf(value).Elem(), "")
			imgui.TreePop()
		}
	}

	if kinds := storage.TagKinds(ci.selectedEntity); len(kinds) > 0 {
		imgui.Separator()
		imgui.Text("Tags")
		for _, k := range kinds {
			imgui.BulletText(storage.Tags().Name(k))
		}
	}

	imgui.End()
}

// renderValue edits val in place. val is addressable because component
// values are reached through the pointer returned by Storage.Component.
func renderValue(val reflect.Value, name string) {
	if val.Kind() == reflect.Struct {
		for i := range val.NumField() {
			field := val.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			fieldVal := val.Field(i)
			if fieldVal.Kind() == reflect.Struct {
				if imgui.TreeNodeStr(field.Name) {
					renderValue(fieldVal, field.Name)
					imgui.TreePop()
				}
				continue
			}
			renderField(field.Name, fieldVal)
		}
		return
	}

	if name == "" {
		name = "value"
	}
	renderField(name, val)
}

func renderField(name string, val reflect.Value) {
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Slice, reflect.Array:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		if val.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
		} else {
			imgui.Text(fmt.Sprintf("%s: <%s>", name, val.Type()))
		}
	}
}
