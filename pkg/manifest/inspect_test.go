package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	doc, err := Reconcile(withForeignAlias(baseManifest), mustParse(t, "icons:\n  christmas: b.png\n"))
	require.NoError(t, err)

	info, err := Inspect(doc)
	require.NoError(t, err)

	assert.Equal(t, "com.example.app", info.Package)
	assert.Equal(t, []string{".MainActivity"}, info.Activities)
	require.Len(t, info.Aliases, 2)

	foreign := info.Aliases[0]
	assert.Equal(t, ".LegacyEntryActivity", foreign.Name)
	assert.True(t, foreign.Enabled)
	assert.False(t, foreign.Managed)

	managed := info.Aliases[1]
	assert.Equal(t, ".christmasActivity", managed.Name)
	assert.False(t, managed.Enabled)
	assert.Equal(t, "@mipmap/ic_launcher_christmas", managed.Icon)
	assert.Equal(t, ".MainActivity", managed.Target)
	assert.True(t, managed.Managed)
}

func TestInspectEnabledDefaultsToTrue(t *testing.T) {
	info, err := Inspect(`<manifest package="p">
  <application>
    <activity-alias android:name=".XActivity" android:targetActivity=".MainActivity" />
  </application>
</manifest>`)
	require.NoError(t, err)
	require.Len(t, info.Aliases, 1)
	assert.True(t, info.Aliases[0].Enabled)
	assert.False(t, info.Aliases[0].Managed)
}

func TestInspectMalformed(t *testing.T) {
	_, err := Inspect("<manifest><application></manifest>")
	require.Error(t, err)
}

func TestInspectNoApplication(t *testing.T) {
	_, err := Inspect("<manifest package=\"p\"></manifest>")
	require.Error(t, err)
}

func TestMarkerIdentifier(t *testing.T) {
	assert.Equal(t, "christmas", MarkerIdentifier(".christmasActivity"))
	assert.Equal(t, "christmas", MarkerIdentifier("com.example.app.christmasActivity"))
}
