package assistant

import "github.com/invopop/jsonschema"

const (
	// FunctionChangeColor recolors the call trigger.
	FunctionChangeColor = "ChangeColor"
	// FunctionWriteText writes text into the typed-text target.
	FunctionWriteText = "WriteText"

	ParameterColorCode = "ColorCode"
	ParameterText      = "Text"
)

// Function declares a UI function the assistant can call.
type Function struct {
	Name        string             `json:"name"`
	Async       bool               `json:"async"`
	Parameters  *jsonschema.Schema `json:"parameters" copier:"-"`
	Description string             `json:"description"`
}

// ChangeColor declares the function that recolors the call trigger.
func ChangeColor() Function {
	return Function{
		Name:  FunctionChangeColor,
		Async: false,
		Parameters: objectSchema(map[string]string{
			ParameterColorCode: "The HEX color code including the #",
		}, ParameterColorCode),
		Description: "Changes the color of a HTML element",
	}
}

// WriteText declares the function that writes text on user request.
func WriteText() Function {
	return Function{
		Name:  FunctionWriteText,
		Async: false,
		Parameters: objectSchema(map[string]string{
			ParameterText: "The text to write",
		}, ParameterText),
		Description: "Writes text on a website on user request",
	}
}

// objectSchema builds an object schema of string properties, in the order of
// names.
func objectSchema(descriptions map[string]string, names ...string) *jsonschema.Schema {
	properties := jsonschema.NewProperties()
	for _, name := range names {
		properties.Set(name, &jsonschema.Schema{
			Type:        "string",
			Description: descriptions[name],
		})
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
	}
}
