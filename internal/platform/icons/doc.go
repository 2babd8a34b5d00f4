// Package icons defines the icon tokens used by landing page content.
//
// Content refers to icons by a stable token so the data never dictates
// markup. Templates resolve each token to a Lucide symbol in the inline
// sprite returned by LucideSprite.
package icons
