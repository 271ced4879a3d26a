package services

import (
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/aulesit/licservctl/manager/system"
)

// GetServiceDetail queries the SCM directly for one service. Used by the
// info views only; status classification works off the sc text blob instead,
// which is the compatibility contract with the original tooling.
func GetServiceDetail(name string) Service {
	ret := Service{Name: name, Status: "unknown", StartType: "Unknown"}

	conn, err := mgr.Connect()
	if err != nil {
		return ret
	}

	defer conn.Disconnect()
	srv, err := conn.OpenService(name)
	if err != nil {
		return ret
	}

	defer srv.Close()
	q, err := srv.Query()
	if err != nil {
		return ret
	}

	conf, err := srv.Config()
	if err != nil {
		return ret
	}

	ret.BinPath = system.CleanString(conf.BinaryPathName)
	ret.Description = system.CleanString(conf.Description)
	ret.DisplayName = system.CleanString(conf.DisplayName)
	ret.PID = q.ProcessId
	ret.StartType = serviceStartType(uint32(conf.StartType))
	ret.Status = serviceStatusText(uint32(q.State))
	ret.Username = system.CleanString(conf.ServiceStartName)
	ret.DelayedAutoStart = conf.DelayedAutoStart
	return ret
}

func ServiceExists(name string) bool {
	conn, err := mgr.Connect()
	if err != nil {
		return false
	}

	defer conn.Disconnect()
	srv, err := conn.OpenService(name)
	if err != nil {
		return false
	}

	defer srv.Close()
	return true
}

// https://docs.microsoft.com/en-us/dotnet/api/system.serviceprocess.servicecontrollerstatus?view=dotnet-plat-ext-3.1
func serviceStatusText(num uint32) string {
	switch num {
	case 1:
		return "stopped"
	case 2:
		return "start_pending"
	case 3:
		return "stop_pending"
	case 4:
		return "running"
	case 5:
		return "continue_pending"
	case 6:
		return "pause_pending"
	case 7:
		return "paused"
	default:
		return "unknown"
	}
}

// https://docs.microsoft.com/en-us/dotnet/api/system.serviceprocess.servicestartmode?view=dotnet-plat-ext-3.1
func serviceStartType(num uint32) string {
	switch num {
	case 0:
		return "Boot"
	case 1:
		return "System"
	case 2:
		return "Automatic"
	case 3:
		return "Manual"
	case 4:
		return "Disabled"
	default:
		return "Unknown"
	}
}
