package icon

// Message constants
const (
	MsgShort = "Switch the active launcher icon on a connected device"
	MsgLong  = `The 'icon' commands drive the runtime side of icon switching over adb:
exactly one launcher component is enabled at a time, and unknown or
empty identifiers degrade to the configured default rather than
failing. The only hard failure is the absence of a usable device.`

	MsgExample = `  # Switch to the christmas icon
  iconshift icon set christmas --package com.example.app

  # Back to the default icon
  iconshift icon set

  # What is active right now?
  iconshift icon current --package com.example.app`
)
