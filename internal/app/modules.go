package app

import (
	"github.com/specialistvlad/appdescriptor/internal/registry"
	"github.com/specialistvlad/appdescriptor/modules/android"
	"github.com/specialistvlad/appdescriptor/modules/flutter"
	"github.com/specialistvlad/appdescriptor/modules/google_services"
	"github.com/specialistvlad/appdescriptor/modules/kotlin"
)

// coreModules is the definitive list of all build plugins that are compiled
// into the appdescriptor binary.
var coreModules = []registry.Module{
	&android.Module{},
	&kotlin.Module{},
	&flutter.Module{},
	&google_services.Module{},
}
