// Package tooltip renders localized game tooltip text.
//
// Raw gamestrings embed a small markup language:
//
//	<c val="#TooltipNumbers">150</c>   colour span (named or hex)
//	<s val="StandardTooltipHeader">..</s> style span
//	<n/>                               line break
//	<img path="@UI/StormTalentInTextArmorIcon"/> inline icon
//	~~0.04~~                           per-level scaling factor
//
// A [Description] keeps the raw text and produces plain or coloured renderings
// on demand. HTML output is passed through a bluemonday policy so only the
// markup the renderer itself emits survives.
package tooltip
