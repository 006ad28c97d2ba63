package iconshift

// Message constants
const (
	MsgShort = "Dynamic launcher icon management for Android app projects"
	MsgLong  = `iconshift keeps an Android project's launcher icon variants in sync
with a declarative configuration: it reconciles activity-alias blocks
in AndroidManifest.xml, copies icon bitmaps per density, and switches
the active icon on a connected device.

Icons are declared in icons.yaml at the project root:

  default_icon: default
  icons:
    default: assets/icons/default.png
    christmas:
      path: assets/icons/christmas.png
      label: Christmas

Run 'iconshift setup' after editing the configuration, and
'iconshift icon set <identifier>' to switch the active icon.`
)
