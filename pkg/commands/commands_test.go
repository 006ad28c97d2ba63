package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/iconshift/pkg/backup"
	"github.com/arthur-debert/iconshift/pkg/config"
	"github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/filesystem"
	"github.com/arthur-debert/iconshift/pkg/iconconfig"
	"github.com/arthur-debert/iconshift/pkg/types"
)

const testManifest = `<manifest xmlns:android="http://schemas.android.com/apk/res/android"
    package="com.example.app">
    <application
        android:label="example"
        android:icon="@mipmap/ic_launcher">
        <activity
            android:name=".MainActivity"
            android:exported="true">
            <intent-filter>
                <action android:name="android.intent.action.MAIN" />
                <category android:name="android.intent.category.LAUNCHER" />
            </intent-filter>
        </activity>
    </application>
</manifest>
`

const testIcons = `default_icon: default
icons:
  default: assets/icons/default.png
  christmas:
    path: assets/icons/christmas.png
    label: Christmas
`

func newTestEnv(t *testing.T) Env {
	t.Helper()
	fs := filesystem.NewMemory()

	settings := &config.Settings{
		Icons:    "icons.yaml",
		Manifest: "android/app/src/main/AndroidManifest.xml",
		ResDir:   "android/app/src/main/res",
	}
	project := config.NewProject("myapp", settings)

	require.NoError(t, fs.MkdirAll("myapp/android/app/src/main", 0755))
	require.NoError(t, fs.WriteFile(project.Manifest(), []byte(testManifest), 0644))
	require.NoError(t, fs.WriteFile(project.IconConfig(), []byte(testIcons), 0644))
	require.NoError(t, fs.MkdirAll("myapp/assets/icons", 0755))
	require.NoError(t, fs.WriteFile("myapp/assets/icons/default.png", []byte("png-default"), 0644))
	require.NoError(t, fs.WriteFile("myapp/assets/icons/christmas.png", []byte("png-christmas"), 0644))

	return Env{
		FS:              fs,
		Project:         project,
		Backups:         backup.NewStore(fs, "state/backups"),
		CheckFilesystem: true,
	}
}

func readFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSetupFullPipeline(t *testing.T) {
	env := newTestEnv(t)

	res, err := Setup(env)
	require.NoError(t, err)

	assert.Empty(t, res.Issues)
	assert.True(t, res.ManifestChanged)
	assert.NotEmpty(t, res.BackupPath)
	assert.Len(t, res.ResourcesWritten, 5)
	assert.Equal(t, env.Project.Summary(), res.SummaryPath)

	doc := readFile(t, env.FS, env.Project.Manifest())
	assert.Contains(t, doc, ".christmasActivity")
	assert.NotContains(t, doc, ".defaultActivity")

	md := readFile(t, env.FS, env.Project.Summary())
	assert.Contains(t, md, "Christmas")
}

func TestSetupIsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	_, err := Setup(env)
	require.NoError(t, err)
	first := readFile(t, env.FS, env.Project.Manifest())

	res, err := Setup(env)
	require.NoError(t, err)
	assert.False(t, res.ManifestChanged)
	assert.Equal(t, first, readFile(t, env.FS, env.Project.Manifest()))
}

func TestSetupAbortsOnValidationIssues(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.FS.WriteFile(env.Project.IconConfig(),
		[]byte("icons:\n  christmas: assets/icons/missing.png\n"), 0644))
	before := readFile(t, env.FS, env.Project.Manifest())

	res, err := Setup(env)
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigValid, errors.GetCode(err))
	require.NotNil(t, res)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, iconconfig.IssueFileNotFound, res.Issues[0].Kind)

	// No mutation happened
	assert.Equal(t, before, readFile(t, env.FS, env.Project.Manifest()))
}

func TestSetupMissingConfig(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.FS.Remove(env.Project.IconConfig()))

	_, err := Setup(env)
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigSourceNotFound, errors.GetCode(err))
}

func TestSetupMissingAnchorLeavesManifestUntouched(t *testing.T) {
	env := newTestEnv(t)
	broken := "<manifest><activity /></manifest>"
	require.NoError(t, env.FS.WriteFile(env.Project.Manifest(), []byte(broken), 0644))

	_, err := Setup(env)
	require.Error(t, err)
	assert.Equal(t, errors.ErrManifestMissingAnchor, errors.GetCode(err))
	assert.Equal(t, broken, readFile(t, env.FS, env.Project.Manifest()))
}

func TestUninstallRestoresFromBackup(t *testing.T) {
	env := newTestEnv(t)

	_, err := Setup(env)
	require.NoError(t, err)

	res, err := Uninstall(env)
	require.NoError(t, err)

	assert.True(t, res.RestoredFromBackup)
	assert.True(t, res.ResourcesCleaned)
	assert.True(t, res.SummaryRemoved)
	assert.Equal(t, testManifest, readFile(t, env.FS, env.Project.Manifest()))

	_, err = env.FS.Stat("myapp/android/app/src/main/res/mipmap-mdpi/ic_launcher_christmas.png")
	assert.Error(t, err)
}

func TestUninstallWithoutBackupStripsManagedBlocks(t *testing.T) {
	env := newTestEnv(t)
	env.Backups = nil

	_, err := Setup(env)
	require.NoError(t, err)

	res, err := Uninstall(env)
	require.NoError(t, err)

	assert.False(t, res.RestoredFromBackup)
	assert.True(t, res.ManifestChanged)
	assert.Equal(t, testManifest, readFile(t, env.FS, env.Project.Manifest()))
}

func TestUninstallOnPristineProject(t *testing.T) {
	env := newTestEnv(t)

	res, err := Uninstall(env)
	require.NoError(t, err)
	assert.False(t, res.RestoredFromBackup)
	assert.False(t, res.ManifestChanged)
}

func TestValidateReportsIssues(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.FS.WriteFile(env.Project.IconConfig(),
		[]byte("default_icon: gone\nicons:\n  'bad id': x.png\n"), 0644))
	env.CheckFilesystem = false

	_, issues, err := Validate(env)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestStatus(t *testing.T) {
	env := newTestEnv(t)

	_, err := Setup(env)
	require.NoError(t, err)

	res, err := Status(env)
	require.NoError(t, err)

	assert.Equal(t, "com.example.app", res.Info.Package)
	require.Len(t, res.Info.Aliases, 1)
	assert.True(t, res.Info.Aliases[0].Managed)
	assert.True(t, strings.Contains(res.Summary, "Christmas"))
}
