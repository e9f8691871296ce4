package updater

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"

	"github.com/avolabs/avoterm/internal/config"
)

var ErrNoRelease = errors.New("no releases found")

// UpdateInfo contains information about available updates
type UpdateInfo struct {
	CurrentVersion    string
	LatestVersion     string
	IsUpdateAvailable bool
	ReleaseURL        string
	ReleaseNotes      string
}

// IsNewer reports whether latest is a higher semantic version than current.
func IsNewer(current, latest string) (bool, error) {
	currentVer, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version: %w", err)
	}
	latestVer, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("invalid latest version: %w", err)
	}
	return latestVer.GreaterThan(currentVer), nil
}

func detect(ctx context.Context, repo string) (*selfupdate.Release, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("error checking for updates: %w", err)
	}
	if !found {
		return nil, ErrNoRelease
	}
	return latest, nil
}

// CheckForUpdates asks GitHub for the newest release of repo.
func CheckForUpdates(ctx context.Context, repo string) (*UpdateInfo, error) {
	latest, err := detect(ctx, repo)
	if err != nil {
		return nil, err
	}

	newer, err := IsNewer(config.Version, latest.Version())
	if err != nil {
		return nil, err
	}

	return &UpdateInfo{
		CurrentVersion:    config.Version,
		LatestVersion:     latest.Version(),
		IsUpdateAvailable: newer,
		ReleaseURL:        latest.URL,
		ReleaseNotes:      latest.ReleaseNotes,
	}, nil
}

// PerformUpdate downloads the latest release and replaces the running binary.
func PerformUpdate(ctx context.Context, repo string) error {
	latest, err := detect(ctx, repo)
	if err != nil {
		return err
	}

	newer, err := IsNewer(config.Version, latest.Version())
	if err != nil {
		return err
	}
	if !newer {
		return fmt.Errorf("already running the latest version (%s)", config.Version)
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		return fmt.Errorf("failed to create updater: %w", err)
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	if err := updater.UpdateTo(ctx, latest, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	return nil
}

// AssetName returns the release asset expected for this platform.
func AssetName() string {
	name := fmt.Sprintf("avoterm-%s-%s", runtime.GOOS, runtime.GOARCH)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}
