package rm68120

import (
	"fmt"
	"sort"
	"strings"
)

// Command is a controller operation code. On the 16-bit bus every code is
// sent as a single word, the register number in the high byte.
type Command uint16

// Commands (from the RM68120 register map).
const (
	Nop                        Command = 0x0000
	SoftReset                  Command = 0x0100
	GetDisplayID               Command = 0x0400
	GetDSIErr                  Command = 0x0500
	GetPowerMode               Command = 0x0A00
	GetAddressMode             Command = 0x0B00
	GetPixelFormat             Command = 0x0C00
	GetDisplayMode             Command = 0x0D00
	GetSignalMode              Command = 0x0E00
	GetDiagnosticResult        Command = 0x0F00
	EnterSleepMode             Command = 0x1000
	ExitSleepMode              Command = 0x1100 // Sleep Out
	EnterPartialMode           Command = 0x1200
	EnterNormalMode            Command = 0x1300
	ExitInvertMode             Command = 0x2000
	EnterInvertMode            Command = 0x2100
	SetAllPixelOff             Command = 0x2200
	SetAllPixelOn              Command = 0x2300
	GammaCurveSelect           Command = 0x2600
	SetDisplayOff              Command = 0x2800 // Display Off
	SetDisplayOn               Command = 0x2900 // Display On
	SetColumnAddress           Command = 0x2A00 // Column Address Set
	SetPageAddress             Command = 0x2B00 // Page Address Set
	WriteMemoryStart           Command = 0x2C00 // Memory Write
	ReadMemoryStart            Command = 0x2E00
	SetPartialArea             Command = 0x3000
	SetScrollArea              Command = 0x3300
	SetTearOff                 Command = 0x3400
	SetTearOn                  Command = 0x3500
	SetAddressMode             Command = 0x3600 // Memory Data Access Control
	ExitIdleMode               Command = 0x3800
	EnterIdleMode              Command = 0x3900
	SetPixelFormat             Command = 0x3A00 // Interface Pixel Format
	WriteMemoryContinue        Command = 0x3C00
	ReadMemoryContinue         Command = 0x3E00
	SetTearScanline            Command = 0x4400
	GetScanline                Command = 0x4500
	SetDeepStandbyMode         Command = 0x4F00
	SetProfileValueForDisplay  Command = 0x5000
	SetDisplayBrightness       Command = 0x5100
	GetDisplayBrightness       Command = 0x5200
	SetControlDisplay          Command = 0x5300
	GetControlDisplay          Command = 0x5400
	SetCABCMode                Command = 0x5500
	GetCABCMode                Command = 0x5600
	SetHysteresis              Command = 0x5700
	SetGammaSetting            Command = 0x5800
	GetFSValueMSBs             Command = 0x5A00
	GetFSValueLSBs             Command = 0x5B00
	GetMedianFilterFSValueMSBs Command = 0x5C00
	GetMedianFilterFSValueLSBs Command = 0x5D00
	SetCABCMinBrightness       Command = 0x5E00
	GetCABCMinBrightness       Command = 0x5F00
	SetLightSensorCoefficient  Command = 0x6500
	GetLSCCMSBs                Command = 0x6600
	GetLSCCLSBs                Command = 0x6700
	GetBlackWhiteLowBit        Command = 0x7000
	GetBkx                     Command = 0x7100
	GetBky                     Command = 0x7200
	GetWx                      Command = 0x7300
	GetWy                      Command = 0x7400
	GetRedGreenLowBit          Command = 0x7500
	GetRx                      Command = 0x7600
	GetRy                      Command = 0x7700
	GetGx                      Command = 0x7800
	GetGy                      Command = 0x7900
	GetBlueAColorLowBit        Command = 0x7A00
	GetBx                      Command = 0x7B00
	GetBy                      Command = 0x7C00
	GetAx                      Command = 0x7D00
	GetAy                      Command = 0x7E00
	ReadDDBStart               Command = 0xA100
	ReadDDBContinue            Command = 0xA800
	ReadFirstChecksum          Command = 0xAA00
	ReadContinueChecksum       Command = 0xAF00
	ReadID1                    Command = 0xDA00
	ReadID2                    Command = 0xDB00
	ReadID3                    Command = 0xDC00
)

var commandNames = map[Command]string{
	Nop:                        "Nop",
	SoftReset:                  "SoftReset",
	GetDisplayID:               "GetDisplayID",
	GetDSIErr:                  "GetDSIErr",
	GetPowerMode:               "GetPowerMode",
	GetAddressMode:             "GetAddressMode",
	GetPixelFormat:             "GetPixelFormat",
	GetDisplayMode:             "GetDisplayMode",
	GetSignalMode:              "GetSignalMode",
	GetDiagnosticResult:        "GetDiagnosticResult",
	EnterSleepMode:             "EnterSleepMode",
	ExitSleepMode:              "ExitSleepMode",
	EnterPartialMode:           "EnterPartialMode",
	EnterNormalMode:            "EnterNormalMode",
	ExitInvertMode:             "ExitInvertMode",
	EnterInvertMode:            "EnterInvertMode",
	SetAllPixelOff:             "SetAllPixelOff",
	SetAllPixelOn:              "SetAllPixelOn",
	GammaCurveSelect:           "GammaCurveSelect",
	SetDisplayOff:              "SetDisplayOff",
	SetDisplayOn:               "SetDisplayOn",
	SetColumnAddress:           "SetColumnAddress",
	SetPageAddress:             "SetPageAddress",
	WriteMemoryStart:           "WriteMemoryStart",
	ReadMemoryStart:            "ReadMemoryStart",
	SetPartialArea:             "SetPartialArea",
	SetScrollArea:              "SetScrollArea",
	SetTearOff:                 "SetTearOff",
	SetTearOn:                  "SetTearOn",
	SetAddressMode:             "SetAddressMode",
	ExitIdleMode:               "ExitIdleMode",
	EnterIdleMode:              "EnterIdleMode",
	SetPixelFormat:             "SetPixelFormat",
	WriteMemoryContinue:        "WriteMemoryContinue",
	ReadMemoryContinue:         "ReadMemoryContinue",
	SetTearScanline:            "SetTearScanline",
	GetScanline:                "GetScanline",
	SetDeepStandbyMode:         "SetDeepStandbyMode",
	SetProfileValueForDisplay:  "SetProfileValueForDisplay",
	SetDisplayBrightness:       "SetDisplayBrightness",
	GetDisplayBrightness:       "GetDisplayBrightness",
	SetControlDisplay:          "SetControlDisplay",
	GetControlDisplay:          "GetControlDisplay",
	SetCABCMode:                "SetCABCMode",
	GetCABCMode:                "GetCABCMode",
	SetHysteresis:              "SetHysteresis",
	SetGammaSetting:            "SetGammaSetting",
	GetFSValueMSBs:             "GetFSValueMSBs",
	GetFSValueLSBs:             "GetFSValueLSBs",
	GetMedianFilterFSValueMSBs: "GetMedianFilterFSValueMSBs",
	GetMedianFilterFSValueLSBs: "GetMedianFilterFSValueLSBs",
	SetCABCMinBrightness:       "SetCABCMinBrightness",
	GetCABCMinBrightness:       "GetCABCMinBrightness",
	SetLightSensorCoefficient:  "SetLightSensorCoefficient",
	GetLSCCMSBs:                "GetLSCCMSBs",
	GetLSCCLSBs:                "GetLSCCLSBs",
	GetBlackWhiteLowBit:        "GetBlackWhiteLowBit",
	GetBkx:                     "GetBkx",
	GetBky:                     "GetBky",
	GetWx:                      "GetWx",
	GetWy:                      "GetWy",
	GetRedGreenLowBit:          "GetRedGreenLowBit",
	GetRx:                      "GetRx",
	GetRy:                      "GetRy",
	GetGx:                      "GetGx",
	GetGy:                      "GetGy",
	GetBlueAColorLowBit:        "GetBlueAColorLowBit",
	GetBx:                      "GetBx",
	GetBy:                      "GetBy",
	GetAx:                      "GetAx",
	GetAy:                      "GetAy",
	ReadDDBStart:               "ReadDDBStart",
	ReadDDBContinue:            "ReadDDBContinue",
	ReadFirstChecksum:          "ReadFirstChecksum",
	ReadContinueChecksum:       "ReadContinueChecksum",
	ReadID1:                    "ReadID1",
	ReadID2:                    "ReadID2",
	ReadID3:                    "ReadID3",
}

// Commands returns every known command, ordered by code.
func Commands() []Command {
	all := make([]Command, 0, len(commandNames))
	for c := range commandNames {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Code is the word sent on the bus for this command.
func (c Command) Code() uint16 {
	return uint16(c)
}

// IsRead reports if the command reads back from the controller. Only the
// framing of these commands is supported; the bus is write-only.
func (c Command) IsRead() bool {
	switch c {
	case ReadMemoryStart, ReadMemoryContinue,
		ReadDDBStart, ReadDDBContinue,
		ReadFirstChecksum, ReadContinueChecksum,
		ReadID1, ReadID2, ReadID3:
		return true
	}
	name, ok := commandNames[c]
	return ok && strings.HasPrefix(name, "Get")
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%#04x)", uint16(c))
}
