package attrs

import "strings"

// Attribute names below follow the React DOM property names. Each list is
// matched in the order Convert checks them, so a name that appears in two
// lists is only ever handled by the first.

// renamedAttributes maps HTML attribute names to JSX names whose spelling
// differs by more than case. Matching is exact.
var renamedAttributes = map[string]string{
	"accept-charset": "acceptCharset",
	"class":          "className",
	"for":            "htmlFor",
	"http-equiv":     "httpEquiv",
}

var eventHandlerAttributes = []string{
	"onAbort",
	"onAnimationEnd",
	"onAnimationIteration",
	"onAnimationStart",
	"onAuxClick",
	"onBeforeInput",
	"onBlur",
	"onCanPlay",
	"onCanPlayThrough",
	"onChange",
	"onClick",
	"onClose",
	"onCompositionEnd",
	"onCompositionStart",
	"onCompositionUpdate",
	"onContextMenu",
	"onCopy",
	"onCut",
	"onDoubleClick",
	"onDrag",
	"onDragEnd",
	"onDragEnter",
	"onDragExit",
	"onDragLeave",
	"onDragOver",
	"onDragStart",
	"onDrop",
	"onDurationChange",
	"onEmptied",
	"onEncrypted",
	"onEnded",
	"onError",
	"onFocus",
	"onGotPointerCapture",
	"onInput",
	"onInvalid",
	"onKeyDown",
	"onKeyPress",
	"onKeyUp",
	"onLoad",
	"onLoadedData",
	"onLoadedMetadata",
	"onLoadStart",
	"onLostPointerCapture",
	"onMouseDown",
	"onMouseEnter",
	"onMouseLeave",
	"onMouseMove",
	"onMouseOut",
	"onMouseOver",
	"onMouseUp",
	"onPaste",
	"onPause",
	"onPlay",
	"onPlaying",
	"onPointerCancel",
	"onPointerDown",
	"onPointerEnter",
	"onPointerLeave",
	"onPointerMove",
	"onPointerOut",
	"onPointerOver",
	"onPointerUp",
	"onProgress",
	"onRateChange",
	"onReset",
	"onResize",
	"onScroll",
	"onSeeked",
	"onSeeking",
	"onSelect",
	"onStalled",
	"onSubmit",
	"onSuspend",
	"onTimeUpdate",
	"onToggle",
	"onTouchCancel",
	"onTouchEnd",
	"onTouchMove",
	"onTouchStart",
	"onTransitionEnd",
	"onVolumeChange",
	"onWaiting",
	"onWheel",
}

// svgCoerceToBooleanAttributes are enumerated SVG attributes accepting
// "true" and "false". SVG names are case-sensitive, so matching is exact.
var svgCoerceToBooleanAttributes = []string{
	"autoReverse",
	"externalResourcesRequired",
	"focusable",
	"preserveAlpha",
}

var coerceToBooleanAttributes = []string{
	// enumerated, other values are kept as strings
	"contentEditable",
	"draggable",
	"spellCheck",
	"value",
	"capture",
	"download",

	// boolean
	"allowFullScreen",
	"async",
	"autoFocus",
	"autoPlay",
	"controls",
	"default",
	"defer",
	"disabled",
	"disablePictureInPicture",
	"disableRemotePlayback",
	"formNoValidate",
	"hidden",
	"loop",
	"noModule",
	"noValidate",
	"open",
	"playsInline",
	"readOnly",
	"required",
	"reversed",
	"scoped",
	"seamless",
	"itemScope",
	"checked",
	"multiple",
	"muted",
	"selected",
}

// keepTrueLiteral lists attributes rendered as name={true} instead of the
// bare shorthand.
var keepTrueLiteral = map[string]bool{
	"checked":  true,
	"disabled": true,
	"selected": true,
	"value":    true,
}

var numberAttributes = []string{
	"cols",
	"rows",
	"size",
	"span",
	"rowSpan",
	"colSpan",
	"start",
	"tabIndex",
	"border",
	"maxLength",
	"minLength",
}

type svgAttribute struct {
	name    string
	numeric bool
}

// svgCamelizedAttributes are kebab or colon cased presentation attributes.
// numeric marks values that become numbers when they parse as one.
var svgCamelizedAttributes = []svgAttribute{
	{"accent-height", false},
	{"alignment-baseline", false},
	{"arabic-form", false},
	{"baseline-shift", false},
	{"cap-height", true},
	{"clip-path", false},
	{"clip-rule", false},
	{"color-interpolation", false},
	{"color-interpolation-filters", false},
	{"color-profile", false},
	{"color-rendering", false},
	{"dominant-baseline", false},
	{"enable-background", false},
	{"fill-opacity", false},
	{"fill-rule", false},
	{"flood-color", false},
	{"flood-opacity", false},
	{"font-family", false},
	{"font-size", true},
	{"font-size-adjust", true},
	{"font-stretch", false},
	{"font-style", false},
	{"font-variant", false},
	{"font-weight", true},
	{"glyph-name", false},
	{"glyph-orientation-horizontal", false},
	{"glyph-orientation-vertical", false},
	{"horiz-adv-x", true},
	{"horiz-origin-x", true},
	{"image-rendering", false},
	{"letter-spacing", true},
	{"lighting-color", false},
	{"marker-end", false},
	{"marker-mid", false},
	{"marker-start", false},
	{"overline-position", true},
	{"overline-thickness", true},
	{"paint-order", false},
	{"panose-1", false},
	{"pointer-events", false},
	{"rendering-intent", false},
	{"shape-rendering", false},
	{"stop-color", false},
	{"stop-opacity", false},
	{"strikethrough-position", true},
	{"strikethrough-thickness", true},
	{"stroke-dasharray", false},
	{"stroke-dashoffset", true},
	{"stroke-linecap", false},
	{"stroke-linejoin", false},
	{"stroke-miterlimit", true},
	{"stroke-opacity", false},
	{"stroke-width", true},
	{"text-anchor", false},
	{"text-decoration", false},
	{"text-rendering", false},
	{"underline-position", true},
	{"underline-thickness", true},
	{"unicode-bidi", false},
	{"unicode-range", false},
	{"units-per-em", true},
	{"v-alphabetic", true},
	{"v-hanging", true},
	{"v-ideographic", true},
	{"v-mathematical", true},
	{"vector-effect", false},
	{"vert-adv-y", true},
	{"vert-origin-x", true},
	{"vert-origin-y", true},
	{"word-spacing", true},
	{"writing-mode", false},
	{"xmlns:xlink", false},
	{"x-height", true},
}

// lowercasedAttributes are mixed-case JSX names whose HTML form is the
// all-lowercase spelling.
var lowercasedAttributes = []string{
	"accessKey",
	"autoCapitalize",
	"autoComplete",
	"autoCorrect",
	"autoSave",
	"cellPadding",
	"cellSpacing",
	"charSet",
	"classID",
	"contextMenu",
	"controlsList",
	"crossOrigin",
	"dateTime",
	"encType",
	"enterKeyHint",
	"fetchPriority",
	"formAction",
	"formEncType",
	"formMethod",
	"formTarget",
	"frameBorder",
	"hrefLang",
	"inputMode",
	"itemID",
	"itemProp",
	"itemRef",
	"itemType",
	"keyParams",
	"keyType",
	"marginHeight",
	"marginWidth",
	"mediaGroup",
	"popoverTarget",
	"popoverTargetAction",
	"radioGroup",
	"referrerPolicy",
	"srcDoc",
	"srcLang",
	"srcSet",
	"useMap",
}

// styleDontStripPx lists CSS properties where a px unit changes meaning
// when dropped, so "14px" must stay a string.
var styleDontStripPx = map[string]bool{
	"border-image-outset": true,
	"border-image-width":  true,
	"flex":                true,
	"line-height":         true,
	"stroke-dasharray":    true,
	"stroke-dashoffset":   true,
	"stroke-miterlimit":   true,
	"stroke-width":        true,
	"tab-size":            true,
	"zoom":                true,
}

// Lookup indexes keyed by the spelling an HTML attribute name has to match.
var (
	eventHandlers = lowerIndex(eventHandlerAttributes)
	svgBooleans   = exactIndex(svgCoerceToBooleanAttributes)
	booleans      = lowerIndex(coerceToBooleanAttributes)
	numbers       = lowerIndex(numberAttributes)
	svgCamelized  = svgIndex(svgCamelizedAttributes)
	lowercased    = lowerIndex(lowercasedAttributes)
)

func lowerIndex(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[strings.ToLower(n)] = n
	}
	return m
}

func exactIndex(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[n] = n
	}
	return m
}

func svgIndex(list []svgAttribute) map[string]svgAttribute {
	m := make(map[string]svgAttribute, len(list))
	for _, a := range list {
		m[a.name] = a
	}
	return m
}
