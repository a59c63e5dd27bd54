package config

// Default returns the shipped tuning. configs/physics.json mirrors these
// values; tests build on them so the reference scenarios stay reproducible.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 640,
			Scale:        1,
			Framerate:    60,
		},
		Physics: PhysicsConfig{
			Gravity:      800,
			MaxFallSpeed: 900,
		},
		Movement: MovementConfig{
			Acceleration: 900,
			Deceleration: 1100,
			MaxSpeed:     300,
			AirControl:   0.65,
		},
		Jump: JumpConfig{
			BaseJumpSpeed:   200,
			CouplingFactor:  2.0,
			ScalingExponent: 1.0,
			RetentionFactor: 0.6,
			CoyoteTime:      0.1,
			JumpBuffer:      0.1,
		},
		Wall: WallConfig{
			Cooldown:              0.25,
			GracePeriod:           0.18,
			MinSpeedForBounce:     60,
			MinBounceAway:         120,
			FightEfficiency:       0.4,
			NeutralEfficiency:     0.85,
			AssistEfficiency:      1.25,
			PerfectThreshold:      1.2,
			FalloverBoostFraction: 0.6,
			RiseAmplifier:         1.15,
			SpeedKickFraction:     0.35,
			MaxBounceSpeed:        420,
			MaxRiseSpeed:          700,
			WallNudge:             2,
		},
		Combo: ComboConfig{
			Window:        4.0,
			MaxMultiplier: 10.0,
			BasePoints: map[string]int{
				"bounce":                100,
				"perfect-bounce":        180,
				"platform-skip-small":   80,
				"platform-skip-medium":  140,
				"platform-skip-large":   220,
				"platform-skip-massive": 350,
				"air-time":              90,
				"speed-bonus":           110,
				"style-bonus":           250,
				"height-chain":          200,
				"wall-chain":            200,
				"precision-landing":     120,
			},
			TierValues: map[string]float64{
				"basic":     1.0,
				"advanced":  1.5,
				"expert":    2.5,
				"legendary": 4.0,
			},
			Increments: map[string]float64{
				"basic":     0.3,
				"advanced":  0.5,
				"expert":    0.8,
				"legendary": 1.2,
			},
			MinBankLength: 3,
			TierBankBonus: map[string]float64{
				"basic":     0.10,
				"advanced":  0.20,
				"expert":    0.35,
				"legendary": 0.50,
			},
			LengthBonusPerEvent:     0.02,
			LengthBonusCap:          0.30,
			TotalBonusCap:           0.80,
			MultiplierRetention:     0.5,
			CompletionBonusLength:   5,
			CompletionBonusFraction: 0.5,
			EfficiencyFloor:         0.5,
			MaxBadLandings:          2,
			MaxLandingsWithoutSkip:  4,
			MaxFallWithoutGain:      480,
			StyleBonusDistinctTypes: 4,
			HeightChainLength:       3,
			WallChainLength:         3,
		},
		Tracking: TrackingConfig{
			PrecisionFraction:    0.2,
			BadLandingFraction:   0.85,
			AirTimeThreshold:     1.2,
			SpeedBonusThreshold:  260,
			HeightRecordInterval: 64,
		},
		Scoring: ScoringConfig{
			HeightPointsPerRecord: 10,
		},
	}
}
