package setup

// Message constants
const (
	MsgShort = "Sync the manifest and resources with the icon configuration"
	MsgLong  = `The 'setup' command reads the icon configuration, validates it, and
converges the Android project on it:
  - Rewrites the managed activity-alias blocks in AndroidManifest.xml
  - Copies icon bitmaps into the density-specific mipmap folders
  - Writes a human-readable summary of the configured icons

The manifest is backed up before its first rewrite (unless --no-backup
is given). Any validation issue aborts setup before anything changes.`

	MsgExample = `  # Sync the project in the current directory
  iconshift setup

  # Sync another project
  iconshift setup --root ~/src/myapp

  # Skip image-file existence checks (useful before assets land)
  iconshift setup --skip-file-check`
)
