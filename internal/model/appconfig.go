package model

// maxRecentJobs caps the recent job list kept in the config file.
const maxRecentJobs = 10

// AppConfig holds application-wide preferences and default inputs.
type AppConfig struct {
	// Defaults applied to new jobs
	DefaultPanelWidth   float64          `json:"default_panel_width"`
	DefaultWorkingSlope float64          `json:"default_working_slope"`
	DefaultDirection    InstallDirection `json:"default_direction"`
	DefaultTop          TopCondition     `json:"default_top_condition"`
	DefaultBottom       BottomCondition  `json:"default_bottom_condition"`

	// Application preferences
	RecentJobs []string `json:"recent_jobs"`
	Theme      string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with the values from DefaultPanelSpec().
func DefaultAppConfig() AppConfig {
	defaults := DefaultPanelSpec()
	return AppConfig{
		DefaultPanelWidth:   defaults.PanelWidth,
		DefaultWorkingSlope: defaults.WorkingSlope,
		DefaultDirection:    defaults.Direction,
		DefaultTop:          defaults.Top,
		DefaultBottom:       defaults.Bottom,
		RecentJobs:          []string{},
		Theme:               "dark",
	}
}

// ApplyToSpec copies the default values from AppConfig into a PanelSpec.
// Joining slopes follow the working slope, as the form does.
func (c AppConfig) ApplyToSpec(s *PanelSpec) {
	s.PanelWidth = c.DefaultPanelWidth
	s.WorkingSlope = c.DefaultWorkingSlope
	s.Direction = c.DefaultDirection
	s.Top = c.DefaultTop
	s.Bottom = c.DefaultBottom
	s.TopJoiningSlope = c.DefaultWorkingSlope
	s.BottomJoiningSlope = c.DefaultWorkingSlope
}

// AddRecentJob moves path to the front of the recent list, dropping duplicates
// and anything beyond the cap.
func (c *AppConfig) AddRecentJob(path string) {
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path && len(recent) < maxRecentJobs {
			recent = append(recent, p)
		}
	}
	c.RecentJobs = recent
}
