package config

// Config is the root config for physics.json. A loaded Config is treated as
// an immutable snapshot: tuning changes build a new Config and swap it into
// the Store between ticks, never patch one in place.
type Config struct {
	Display  DisplayConfig  `json:"display"`
	Physics  PhysicsConfig  `json:"physics"`
	Movement MovementConfig `json:"movement"`
	Jump     JumpConfig     `json:"jump"`
	Wall     WallConfig     `json:"wall"`
	Combo    ComboConfig    `json:"combo"`
	Tracking TrackingConfig `json:"tracking"`
	Scoring  ScoringConfig  `json:"scoring"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsConfig struct {
	Gravity      float64 `json:"gravity" yaml:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	Deceleration float64 `json:"deceleration" yaml:"deceleration"`
	MaxSpeed     float64 `json:"maxSpeed" yaml:"maxSpeed"`
	AirControl   float64 `json:"airControl" yaml:"airControl"`
}

// JumpConfig tunes the momentum model: run speed converts into extra launch
// speed via coupling * speed^exponent on top of the base jump.
type JumpConfig struct {
	BaseJumpSpeed   float64 `json:"baseJumpSpeed" yaml:"baseJumpSpeed"`
	CouplingFactor  float64 `json:"momentumCouplingFactor" yaml:"momentumCouplingFactor"`
	ScalingExponent float64 `json:"jumpScalingExponent" yaml:"jumpScalingExponent"`
	RetentionFactor float64 `json:"horizontalRetentionFactor" yaml:"horizontalRetentionFactor"`
	CoyoteTime      float64 `json:"coyoteTime" yaml:"coyoteTime"`
	JumpBuffer      float64 `json:"jumpBuffer" yaml:"jumpBuffer"`
}

type WallConfig struct {
	Cooldown          float64 `json:"cooldown" yaml:"cooldown"`
	GracePeriod       float64 `json:"gracePeriod" yaml:"gracePeriod"`
	MinSpeedForBounce float64 `json:"minSpeedForBounce" yaml:"minSpeedForBounce"`
	MinBounceAway     float64 `json:"minBounceAwaySpeed" yaml:"minBounceAwaySpeed"`

	// Efficiency by input intent at contact time. Assist may exceed 1.0;
	// anything at or above PerfectThreshold counts as a perfect bounce.
	FightEfficiency   float64 `json:"fightEfficiency" yaml:"fightEfficiency"`
	NeutralEfficiency float64 `json:"neutralEfficiency" yaml:"neutralEfficiency"`
	AssistEfficiency  float64 `json:"assistEfficiency" yaml:"assistEfficiency"`
	PerfectThreshold  float64 `json:"perfectThreshold" yaml:"perfectThreshold"`

	FalloverBoostFraction float64 `json:"falloverBoostFraction" yaml:"falloverBoostFraction"`
	RiseAmplifier         float64 `json:"riseAmplifier" yaml:"riseAmplifier"`
	SpeedKickFraction     float64 `json:"speedKickFraction" yaml:"speedKickFraction"`

	MaxBounceSpeed float64 `json:"maxWallBounceSpeed" yaml:"maxWallBounceSpeed"`
	MaxRiseSpeed   float64 `json:"maxRiseSpeed" yaml:"maxRiseSpeed"`
	WallNudge      float64 `json:"wallNudge" yaml:"wallNudge"`
}

type ComboConfig struct {
	Window        float64 `json:"window"`
	MaxMultiplier float64 `json:"maxMultiplier"`

	// Base points per event type; tier scales them via TierValues.
	BasePoints map[string]int     `json:"basePoints"`
	TierValues map[string]float64 `json:"tierValues"`
	Increments map[string]float64 `json:"multiplierIncrements"`

	// Banking
	MinBankLength       int                `json:"minBankLength"`
	TierBankBonus       map[string]float64 `json:"tierBankBonus"`
	LengthBonusPerEvent float64            `json:"lengthBonusPerEvent"`
	LengthBonusCap      float64            `json:"lengthBonusCap"`
	TotalBonusCap       float64            `json:"totalBonusCap"`
	MultiplierRetention float64            `json:"multiplierRetention"`

	// Completion (timeout with the chain intact)
	CompletionBonusLength   int     `json:"completionBonusLength"`
	CompletionBonusFraction float64 `json:"completionBonusFraction"`

	// Break conditions
	EfficiencyFloor        float64 `json:"efficiencyFloor"`
	MaxBadLandings         int     `json:"maxBadLandings"`
	MaxLandingsWithoutSkip int     `json:"maxLandingsWithoutSkip"`
	MaxFallWithoutGain     float64 `json:"maxFallWithoutGain"`

	// Style bonus triggers once per chain at this many distinct event types.
	StyleBonusDistinctTypes int `json:"styleBonusDistinctTypes"`

	// Synthetic chain events
	HeightChainLength int `json:"heightChainLength"`
	WallChainLength   int `json:"wallChainLength"`
}

type TrackingConfig struct {
	PrecisionFraction    float64 `json:"precisionFraction"`
	BadLandingFraction   float64 `json:"badLandingFraction"`
	AirTimeThreshold     float64 `json:"airTimeThreshold"`
	SpeedBonusThreshold  float64 `json:"speedBonusThreshold"`
	HeightRecordInterval float64 `json:"heightRecordInterval"`
}

type ScoringConfig struct {
	HeightPointsPerRecord int `json:"heightPointsPerRecord"`
}
