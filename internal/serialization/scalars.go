package serialization

import (
	"strconv"

	"github.com/schollz/deluge-patch/internal/values"
	"github.com/schollz/deluge-patch/internal/xmlkit"
)

func getHexU50(src ParamSource, name string, def values.HexU50) (values.HexU50, error) {
	s, ok := src.Get(name)
	if !ok {
		return def, nil
	}
	return values.ParseHexU50(s)
}

func requireHexU50(src ParamSource, name string) (values.HexU50, error) {
	s, ok := src.Get(name)
	if !ok {
		parent := ""
		if el := src.Element(); el != nil {
			parent = el.Tag
		}
		return values.HexU50{}, &xmlkit.MissingAttributeError{Parent: parent, Name: name}
	}
	return values.ParseHexU50(s)
}

func getOnOff(src ParamSource, name string, def values.OnOff) (values.OnOff, error) {
	s, ok := src.Get(name)
	if !ok {
		return def, nil
	}
	return values.ParseOnOff(s)
}

func getRetrigPhase(src ParamSource, name string, def values.RetrigPhase) (values.RetrigPhase, error) {
	s, ok := src.Get(name)
	if !ok {
		return def, nil
	}
	return values.ParseRetrigPhase(s)
}

// getInt parses a plain decimal integer, falling back to def when absent or
// unparseable (used for fields the original reader clamps rather than
// errors on).
func getInt(src ParamSource, name string, def int) (int, bool) {
	s, ok := src.Get(name)
	if !ok {
		return def, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, false
	}
	return v, true
}

func getIntClamped(src ParamSource, name string, def, min, max int) int {
	v, ok := getInt(src, name, def)
	if !ok {
		return def
	}
	return values.Clamp(v, min, max)
}

func getString(src ParamSource, name, def string) string {
	s, ok := src.Get(name)
	if !ok {
		return def
	}
	return s
}

func getSamplePosition(src ParamSource, name string) (values.SamplePosition, bool, error) {
	s, ok := src.Get(name)
	if !ok {
		return 0, false, nil
	}
	v, err := values.ParseSamplePosition(s)
	return v, true, err
}

func setHexU50(sink WriteSink, name string, v values.HexU50) {
	sink.Set(name, v.String())
}

func setOnOff(sink WriteSink, name string, v values.OnOff) {
	sink.Set(name, v.String())
}

func setRetrigPhase(sink WriteSink, name string, v values.RetrigPhase) {
	sink.Set(name, v.String())
}

func setInt(sink WriteSink, name string, v int) {
	sink.Set(name, strconv.Itoa(v))
}

func setString(sink WriteSink, name, v string) {
	sink.Set(name, v)
}

func setSamplePosition(sink WriteSink, name string, v values.SamplePosition) {
	sink.Set(name, v.String())
}
