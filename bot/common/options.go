package common

import (
	"schnose/models"

	"github.com/bwmarrin/discordgo"
)

// Options indexes a command's options by name
type Options map[string]*discordgo.ApplicationCommandInteractionDataOption

// ParseOptions indexes options by name
func ParseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) Options {
	parsed := make(Options, len(options))
	for _, option := range options {
		parsed[option.Name] = option
	}
	return parsed
}

// String returns the option's value, or nil if it was omitted
func (o Options) String(name string) *string {
	option, ok := o[name]
	if !ok {
		return nil
	}
	value := option.StringValue()
	return &value
}

// StringOr returns the option's value or fallback
func (o Options) StringOr(name, fallback string) string {
	if value := o.String(name); value != nil {
		return *value
	}
	return fallback
}

// Int returns the option's value, or nil if it was omitted
func (o Options) Int(name string) *int {
	option, ok := o[name]
	if !ok {
		return nil
	}
	value := int(option.IntValue())
	return &value
}

// Float returns the option's value, or nil if it was omitted
func (o Options) Float(name string) *float64 {
	option, ok := o[name]
	if !ok {
		return nil
	}
	value := option.FloatValue()
	return &value
}

// Bool returns the option's value, or nil if it was omitted
func (o Options) Bool(name string) *bool {
	option, ok := o[name]
	if !ok {
		return nil
	}
	value := option.BoolValue()
	return &value
}

// Mode parses a mode option. Unknown values are treated as omitted; the
// command's choice list keeps them from reaching us.
func (o Options) Mode(name string) *models.Mode {
	value := o.String(name)
	if value == nil {
		return nil
	}
	mode, err := models.ParseMode(*value)
	if err != nil {
		return nil
	}
	return &mode
}
