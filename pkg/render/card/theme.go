package card

import "github.com/kanau/tetracard/pkg/render"

// Static dark color scheme shared by every card type.
var (
	bgPrimary     = render.MustParseHex("#0F0F14")
	bgSecondary   = render.MustParseHex("#1A1A24")
	bgTertiary    = render.MustParseHex("#242430")
	borderColor   = render.MustParseHex("#2A2A35")
	textPrimary   = render.MustParseHex("#FFFFFF")
	textSecondary = render.MustParseHex("#9B9BA5")
	textDisabled  = render.MustParseHex("#5A5A66")
	accentColor   = render.MustParseHex("#6366F1")
	successColor  = render.MustParseHex("#10B981")
	warningColor  = render.MustParseHex("#F59E0B")
	errorColor    = render.MustParseHex("#EF4444")
)
