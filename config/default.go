package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/anisan-cli/seekbar/color"
	"github.com/anisan-cli/seekbar/constant"
	"github.com/anisan-cli/seekbar/key"
	"github.com/anisan-cli/seekbar/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered setting with its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// fields lists every setting in the order `config info` groups them.
var fields = []Field{
	{key.WindowWidth, 960, "Window width in pixels"},
	{key.WindowHeight, 640, "Window height in pixels"},
	{key.WindowTitle, "Seek Bar", "Window title"},

	{key.SeekbarPadding, 50.0, "Horizontal space between the window edge and the track"},
	{key.SeekbarTrackHeight, 15.0, "Height of the track before any file is loaded"},
	{key.SeekbarDuration, 600.0, "Length of the simulated media in seconds"},
	{key.SeekbarLoadingTime, 5.0, "Seconds the loading animation runs after a file is dropped"},
	{key.SeekbarNudgeOffset, 20.0, "Pixels the cursor moves per arrow key press"},
	{key.SeekbarFontSize, 20.0, "Label font size in pixels"},
	{key.SeekbarFontPath, "", "TrueType font for labels.\nUses the embedded Go Regular font if empty"},
	{key.SeekbarAccentColor, "#ff0000", "Colour of the played track, the cursor and the loading sweep"},

	{key.AssetsPath, "", "Directory holding play.png, pause.png, skip.png, volume.png and mute.png.\nUses built-in icons if empty"},
	{key.ChaptersFile, "", "Chapters file (toml, json or yaml) with a [[chapters]] list.\nUses built-in chapters if empty"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.TUICellWidth, 8, "Pixels of seek bar per terminal column"},
	{key.TUICellHeight, 16, "Pixels of seek bar per terminal row"},

	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\nerror, warn, info, debug"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
}

// Default indexes the registered settings by key.
var Default = lo.KeyBy(fields, func(f Field) string { return f.Key })

// EnvExposed lists the keys bound to SEEKBAR_* environment variables.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string { return f.Key })

// Fields returns the registered settings in registration order.
func Fields() []Field {
	return append([]Field(nil), fields...)
}

// Env returns the environment variable viper reads the field from.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Seekbar + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type names the Go type of the field's value.
func (f *Field) Type() string {
	return fmt.Sprintf("%T", f.Value)
}

// Pretty renders the field for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Env:         f.Env(),
	})
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		return style.Fg(lo.Ternary(value, color.Green, color.Red))(strconv.FormatBool(value))
	case string:
		if value == "" {
			return style.Faint(`""`)
		}
		return style.Fg(color.Yellow)(value)
	default:
		return style.Fg(color.Cyan)(fmt.Sprint(value))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"hl":     highlight,
	"value":  viper.Get,
}).Parse(`{{ purple .Key }} {{ faint .Type }}
{{ faint .Description }}
  {{ blue "value" }}   {{ hl (value .Key) }}
  {{ blue "default" }} {{ hl .Value }}
  {{ blue "env" }}     {{ .Env }}`))
