package app

import (
	"github.com/specialistvlad/droidspec/internal/plugin"
	"github.com/specialistvlad/droidspec/modules/android"
	"github.com/specialistvlad/droidspec/modules/flutter"
	"github.com/specialistvlad/droidspec/modules/gms"
	"github.com/specialistvlad/droidspec/modules/kotlin"
)

// coreModules is the definitive list of all plugins that are compiled into
// the droidspec binary.
var coreModules = []plugin.Module{
	&android.Module{},
	&kotlin.Module{},
	&flutter.Module{},
	&gms.Module{},
}
