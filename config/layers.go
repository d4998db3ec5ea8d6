package config

import "github.com/yohamta/donburi/ecs"

// Default is the single draw layer the page renders on.
const Default = ecs.LayerDefault
