package schema

var brandValues = []string{"match", "meetic", "okc", "pof"}

var defaultCatalog = Catalog{
	Templates: []ComponentSpec{
		{
			Type:        "screen_layout",
			Label:       "Screen Layout",
			Description: "Standard layout with header, content, footer",
			Props: map[string]PropSpec{
				"backgroundColor": {Type: "color", Default: "#FFFFFF"},
				"topBarHeight":    {Type: "number", Default: 80},
				"screenId":        {Type: "string", Required: true},
			},
		},
		{
			Type:        "landing",
			Label:       "Landing Screen",
			Description: "Landing page with background image",
			Props: map[string]PropSpec{
				"brand":                  {Type: "enum", Values: brandValues, Required: true},
				"backgroundImageMobile":  {Type: "string"},
				"backgroundImageDesktop": {Type: "string"},
				"mobileLogoType":         {Type: "enum", Values: []string{"small", "onDark", "onWhite"}, Default: "onDark"},
				"desktopLogoType":        {Type: "enum", Values: []string{"small", "onDark", "onWhite"}, Default: "small"},
			},
		},
	},
	Atoms: []ComponentSpec{
		{
			Type:        "text",
			Label:       "Text",
			Description: "Displays text",
			Props: map[string]PropSpec{
				"text": {Type: "string", Required: true},
				"type": {
					Type: "enum",
					Values: []string{
						"headline_large", "headline_medium", "headline_small",
						"body_large", "body_medium", "body_small",
						"label_large", "label_medium", "label_small",
					},
					Default: "body_medium",
				},
				"fontWeight": {
					Type: "enum",
					Values: []string{
						"normal", "bold", "w100", "w200", "w300", "w400",
						"w500", "w600", "w700", "w800", "w900",
					},
				},
				"color":     {Type: "color"},
				"textAlign": {Type: "enum", Values: []string{"left", "center", "right", "justify"}},
			},
		},
		{
			Type:        "button",
			Label:       "Button",
			Description: "Interactive button",
			Props: map[string]PropSpec{
				"label":       {Type: "string", Required: true},
				"variant":     {Type: "enum", Values: []string{"primary", "secondary", "tertiary", "ghost"}, Default: "primary"},
				"isFullWidth": {Type: "boolean", Default: false},
				"apiEndpoint": {Type: "string"},
				"exit":        {Type: "string"},
			},
		},
		{
			Type:        "text_input",
			Label:       "Text Input",
			Description: "Text input field",
			Props: map[string]PropSpec{
				"field":        {Type: "string", Required: true},
				"label":        {Type: "string"},
				"hintText":     {Type: "string"},
				"defaultValue": {Type: "string"},
				"obscureText":  {Type: "boolean", Default: false},
				"enabled":      {Type: "boolean", Default: true},
				"errorText":    {Type: "string"},
			},
		},
		{
			Type:        "checkbox",
			Label:       "Checkbox",
			Description: "Checkbox input",
			Props: map[string]PropSpec{
				"field": {Type: "string", Required: true},
				"label": {Type: "string"},
			},
		},
		{
			Type:        "toggle",
			Label:       "Toggle",
			Description: "On/off switch",
			Props: map[string]PropSpec{
				"field": {Type: "string", Required: true},
				"label": {Type: "string"},
			},
		},
		{
			Type:        "slider",
			Label:       "Slider",
			Description: "Value slider",
			Props: map[string]PropSpec{
				"field":     {Type: "string", Required: true},
				"min":       {Type: "number", Default: 0},
				"max":       {Type: "number", Default: 100},
				"divisions": {Type: "number"},
				"label":     {Type: "string"},
			},
		},
		{
			Type:        "progress_bar",
			Label:       "Progress Bar",
			Description: "Progress indicator",
			Props: map[string]PropSpec{
				"value":       {Type: "number", Required: true},
				"showCounter": {Type: "boolean", Default: false},
			},
		},
		{
			Type:        "icon",
			Label:       "Icon",
			Description: "Material icon",
			Props: map[string]PropSpec{
				"icon":  {Type: "string", Required: true},
				"size":  {Type: "number", Default: 24},
				"color": {Type: "color"},
			},
		},
		{
			Type:        "logo",
			Label:       "Logo",
			Description: "Brand logo",
			Props: map[string]PropSpec{
				"brand":  {Type: "enum", Values: brandValues, Required: true},
				"type":   {Type: "enum", Values: []string{"small", "onDark", "onWhite"}, Default: "small"},
				"height": {Type: "number"},
			},
		},
	},
	Molecules: []ComponentSpec{
		{
			Type:        "header",
			Label:       "Header",
			Description: "Header with title and back button",
			Props: map[string]PropSpec{
				"title":          {Type: "string"},
				"subtitle":       {Type: "string"},
				"showBackButton": {Type: "boolean", Default: true},
			},
		},
		{
			Type:        "selection_group",
			Label:       "Selection Group",
			Description: "Group of radio buttons or checkboxes",
			Props: map[string]PropSpec{
				"field":      {Type: "string", Required: true},
				"options":    {Type: "array", Items: map[string]string{"label": "string", "value": "string"}, Required: true},
				"isMultiple": {Type: "boolean", Default: false},
			},
		},
		{
			Type:        "selectable_button_group",
			Label:       "Selectable Button Group",
			Description: "Grid of selectable buttons",
			Props: map[string]PropSpec{
				"field":      {Type: "string", Required: true},
				"options":    {Type: "array", Items: map[string]string{"label": "string", "value": "string"}, Required: true},
				"isMultiple": {Type: "boolean", Default: false},
				"columns":    {Type: "number", Default: 2},
			},
		},
		{
			Type:        "labeled_control",
			Label:       "Labeled Control",
			Description: "Label with checkbox or toggle",
			Props: map[string]PropSpec{
				"htmlLabel":    {Type: "string"},
				"label":        {Type: "string"},
				"field":        {Type: "string"},
				"controlType":  {Type: "enum", Values: []string{"checkbox", "toggle"}, Default: "checkbox"},
				"defaultValue": {Type: "boolean", Default: false},
				"expanded":     {Type: "boolean", Default: true},
			},
		},
		{
			Type:        "selectable_tag_group",
			Label:       "Tag Group",
			Description: "Selectable cloud of tags",
			Props: map[string]PropSpec{
				"field":        {Type: "string"},
				"labels":       {Type: "array", Items: map[string]string{"type": "string"}, Required: true},
				"title":        {Type: "string"},
				"defaultValue": {Type: "array", Items: map[string]string{"type": "string"}},
				"tagSize":      {Type: "enum", Values: []string{"small", "medium", "large"}, Default: "medium"},
				"tagSpacing":   {Type: "number", Default: 8.0},
			},
		},
	},
	Layouts: []ComponentSpec{
		{
			Type:        "container",
			Label:       "Container",
			Description: "Simple container",
			HasChildren: true,
			Props: map[string]PropSpec{
				"padding": {Type: "number"},
				"margin":  {Type: "number"},
				"color":   {Type: "color"},
			},
		},
		{
			Type:        "column",
			Label:       "Column",
			Description: "Vertical arrangement",
			HasChildren: true,
			Props: map[string]PropSpec{
				"mainAxisAlignment": {
					Type:    "enum",
					Values:  []string{"start", "end", "center", "spaceBetween", "spaceAround", "spaceEvenly"},
					Default: "start",
				},
				"crossAxisAlignment": {
					Type:    "enum",
					Values:  []string{"start", "end", "center", "stretch"},
					Default: "center",
				},
				"spacing": {Type: "number"},
			},
		},
		{
			Type:        "row",
			Label:       "Row",
			Description: "Horizontal arrangement",
			HasChildren: true,
			Props: map[string]PropSpec{
				"mainAxisAlignment": {
					Type:    "enum",
					Values:  []string{"start", "end", "center", "spaceBetween", "spaceAround", "spaceEvenly"},
					Default: "start",
				},
				"crossAxisAlignment": {
					Type:    "enum",
					Values:  []string{"start", "end", "center", "stretch"},
					Default: "center",
				},
				"spacing": {Type: "number"},
			},
		},
		{
			Type:        "padding",
			Label:       "Padding",
			Description: "Adds internal spacing",
			HasChildren: true,
			Props: map[string]PropSpec{
				"padding":           {Type: "number"},
				"paddingHorizontal": {Type: "number"},
				"paddingVertical":   {Type: "number"},
				"paddingTop":        {Type: "number"},
				"paddingBottom":     {Type: "number"},
				"paddingLeft":       {Type: "number"},
				"paddingRight":      {Type: "number"},
			},
		},
		{
			Type:        "expanded",
			Label:       "Expanded",
			Description: "Fills available space",
			HasChildren: true,
			Props: map[string]PropSpec{
				"flex": {Type: "number", Default: 1},
			},
		},
		{
			Type:        "sized_box",
			Label:       "SizedBox",
			Description: "Fixed size box",
			HasChildren: true,
			Props: map[string]PropSpec{
				"width":  {Type: "number"},
				"height": {Type: "number"},
			},
		},
		{
			Type:        "center",
			Label:       "Center",
			Description: "Centers content",
			HasChildren: true,
			Props:       map[string]PropSpec{},
		},
		{
			Type:        "scrollable",
			Label:       "Scrollable",
			Description: "Scrollable area",
			HasChildren: true,
			Props: map[string]PropSpec{
				"direction": {Type: "enum", Values: []string{"vertical", "horizontal"}, Default: "vertical"},
			},
		},
	},
}
