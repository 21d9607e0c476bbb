// SPDX-License-Identifier: Unlicense OR MIT

package preset

import (
	"fmt"
	"sort"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/flexui/flexbutton/widget"
)

// iconData maps preset icon names to Material Design IconVG data.
var iconData = map[string][]byte{
	"add":      icons.ContentAdd,
	"check":    icons.NavigationCheck,
	"checkbox": icons.ToggleCheckBox,
	"close":    icons.NavigationClose,
	"delete":   icons.ActionDelete,
	"edit":     icons.EditorModeEdit,
	"favorite": icons.ActionFavorite,
	"home":     icons.ActionHome,
	"info":     icons.ActionInfo,
	"menu":     icons.NavigationMenu,
	"pause":    icons.AVPause,
	"person":   icons.SocialPerson,
	"play":     icons.AVPlayArrow,
	"refresh":  icons.NavigationRefresh,
	"search":   icons.ActionSearch,
	"send":     icons.ContentSend,
	"settings": icons.ActionSettings,
	"share":    icons.SocialShare,
	"star":     icons.ToggleStar,
	"warning":  icons.AlertWarning,
}

// IconNames returns the names of the built-in icons in sorted order.
func IconNames() []string {
	names := make([]string, 0, len(iconData))
	for n := range iconData {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Icon returns the built-in icon called name.
func Icon(name string) (*widget.Icon, error) {
	data, ok := iconData[name]
	if !ok {
		return nil, fmt.Errorf("unknown icon %q", name)
	}
	ic, err := widget.NewIcon(data)
	if err != nil {
		return nil, fmt.Errorf("icon %q: %w", name, err)
	}
	return ic, nil
}
