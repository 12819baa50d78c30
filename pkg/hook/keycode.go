package hook

import "fmt"

// KeyCode identifies a key position independent of layout. The numeric
// values are the native virtual key codes (scan code set 1 with 0x0E00
// / 0xE000 prefixes for extended keys) and must not be renumbered.
type KeyCode uint16

// Key codes.
const (
	KeyUndefined KeyCode = 0x0000

	KeyEscape KeyCode = 0x0001

	// Function keys
	KeyF1  KeyCode = 0x003B
	KeyF2  KeyCode = 0x003C
	KeyF3  KeyCode = 0x003D
	KeyF4  KeyCode = 0x003E
	KeyF5  KeyCode = 0x003F
	KeyF6  KeyCode = 0x0040
	KeyF7  KeyCode = 0x0041
	KeyF8  KeyCode = 0x0042
	KeyF9  KeyCode = 0x0043
	KeyF10 KeyCode = 0x0044
	KeyF11 KeyCode = 0x0057
	KeyF12 KeyCode = 0x0058
	KeyF13 KeyCode = 0x005B
	KeyF14 KeyCode = 0x005C
	KeyF15 KeyCode = 0x005D
	KeyF16 KeyCode = 0x0063
	KeyF17 KeyCode = 0x0064
	KeyF18 KeyCode = 0x0065
	KeyF19 KeyCode = 0x0066
	KeyF20 KeyCode = 0x0067
	KeyF21 KeyCode = 0x0068
	KeyF22 KeyCode = 0x0069
	KeyF23 KeyCode = 0x006A
	KeyF24 KeyCode = 0x006B

	// Alphanumeric row
	KeyBackquote KeyCode = 0x0029
	Key1         KeyCode = 0x0002
	Key2         KeyCode = 0x0003
	Key3         KeyCode = 0x0004
	Key4         KeyCode = 0x0005
	Key5         KeyCode = 0x0006
	Key6         KeyCode = 0x0007
	Key7         KeyCode = 0x0008
	Key8         KeyCode = 0x0009
	Key9         KeyCode = 0x000A
	Key0         KeyCode = 0x000B
	KeyMinus     KeyCode = 0x000C
	KeyEquals    KeyCode = 0x000D
	KeyBackspace KeyCode = 0x000E

	KeyTab      KeyCode = 0x000F
	KeyCapsLock KeyCode = 0x003A

	KeyA KeyCode = 0x001E
	KeyB KeyCode = 0x0030
	KeyC KeyCode = 0x002E
	KeyD KeyCode = 0x0020
	KeyE KeyCode = 0x0012
	KeyF KeyCode = 0x0021
	KeyG KeyCode = 0x0022
	KeyH KeyCode = 0x0023
	KeyI KeyCode = 0x0017
	KeyJ KeyCode = 0x0024
	KeyK KeyCode = 0x0025
	KeyL KeyCode = 0x0026
	KeyM KeyCode = 0x0032
	KeyN KeyCode = 0x0031
	KeyO KeyCode = 0x0018
	KeyP KeyCode = 0x0019
	KeyQ KeyCode = 0x0010
	KeyR KeyCode = 0x0013
	KeyS KeyCode = 0x001F
	KeyT KeyCode = 0x0014
	KeyU KeyCode = 0x0016
	KeyV KeyCode = 0x002F
	KeyW KeyCode = 0x0011
	KeyX KeyCode = 0x002D
	KeyY KeyCode = 0x0015
	KeyZ KeyCode = 0x002C

	KeyOpenBracket  KeyCode = 0x001A
	KeyCloseBracket KeyCode = 0x001B
	KeyBackslash    KeyCode = 0x002B

	KeySemicolon KeyCode = 0x0027
	KeyQuote     KeyCode = 0x0028
	KeyEnter     KeyCode = 0x001C

	KeyComma  KeyCode = 0x0033
	KeyPeriod KeyCode = 0x0034
	KeySlash  KeyCode = 0x0035
	KeySpace  KeyCode = 0x0039

	// Navigation cluster
	KeyPrintScreen   KeyCode = 0x0E37
	KeyScrollLock    KeyCode = 0x0046
	KeyPause         KeyCode = 0x0E45
	KeyLesserGreater KeyCode = 0x0E46

	KeyInsert   KeyCode = 0x0E52
	KeyDelete   KeyCode = 0x0E53
	KeyHome     KeyCode = 0x0E47
	KeyEnd      KeyCode = 0x0E4F
	KeyPageUp   KeyCode = 0x0E49
	KeyPageDown KeyCode = 0x0E51

	KeyUp    KeyCode = 0xE048
	KeyLeft  KeyCode = 0xE04B
	KeyClear KeyCode = 0xE04C
	KeyRight KeyCode = 0xE04D
	KeyDown  KeyCode = 0xE050

	// Numeric keypad
	KeyNumLock     KeyCode = 0x0045
	KeyKpDivide    KeyCode = 0x0E35
	KeyKpMultiply  KeyCode = 0x0037
	KeyKpSubtract  KeyCode = 0x004A
	KeyKpEquals    KeyCode = 0x0E0D
	KeyKpAdd       KeyCode = 0x004E
	KeyKpEnter     KeyCode = 0x0E1C
	KeyKpSeparator KeyCode = 0x0053

	KeyKp1 KeyCode = 0x004F
	KeyKp2 KeyCode = 0x0050
	KeyKp3 KeyCode = 0x0051
	KeyKp4 KeyCode = 0x004B
	KeyKp5 KeyCode = 0x004C
	KeyKp6 KeyCode = 0x004D
	KeyKp7 KeyCode = 0x0047
	KeyKp8 KeyCode = 0x0048
	KeyKp9 KeyCode = 0x0049
	KeyKp0 KeyCode = 0x0052

	// Keypad keys with num lock off
	KeyKpEnd      KeyCode = 0xEE00 | KeyKp1
	KeyKpDown     KeyCode = 0xEE00 | KeyKp2
	KeyKpPageDown KeyCode = 0xEE00 | KeyKp3
	KeyKpLeft     KeyCode = 0xEE00 | KeyKp4
	KeyKpClear    KeyCode = 0xEE00 | KeyKp5
	KeyKpRight    KeyCode = 0xEE00 | KeyKp6
	KeyKpHome     KeyCode = 0xEE00 | KeyKp7
	KeyKpUp       KeyCode = 0xEE00 | KeyKp8
	KeyKpPageUp   KeyCode = 0xEE00 | KeyKp9
	KeyKpInsert   KeyCode = 0xEE00 | KeyKp0
	KeyKpDelete   KeyCode = 0xEE00 | KeyKpSeparator

	// Modifiers
	KeyShiftL   KeyCode = 0x002A
	KeyShiftR   KeyCode = 0x0036
	KeyControlL KeyCode = 0x001D
	KeyControlR KeyCode = 0x0E1D
	KeyAltL     KeyCode = 0x0038
	KeyAltR     KeyCode = 0x0E38
	KeyMetaL    KeyCode = 0x0E5B
	KeyMetaR    KeyCode = 0x0E5C

	KeyContextMenu KeyCode = 0x0E5D

	// System keys
	KeyPower KeyCode = 0xE05E
	KeySleep KeyCode = 0xE05F
	KeyWake  KeyCode = 0xE063

	// Media keys
	KeyMediaPlay     KeyCode = 0xE022
	KeyMediaStop     KeyCode = 0xE024
	KeyMediaPrevious KeyCode = 0xE010
	KeyMediaNext     KeyCode = 0xE019
	KeyMediaSelect   KeyCode = 0xE06D
	KeyMediaEject    KeyCode = 0xE02C
	KeyVolumeMute    KeyCode = 0xE020
	KeyVolumeDown    KeyCode = 0xE02E
	KeyVolumeUp      KeyCode = 0xE030

	// Application launch keys
	KeyAppMail       KeyCode = 0xE06C
	KeyAppCalculator KeyCode = 0xE021
	KeyAppMusic      KeyCode = 0xE03C
	KeyAppPictures   KeyCode = 0xE064

	// Browser keys
	KeyBrowserSearch    KeyCode = 0xE065
	KeyBrowserHome      KeyCode = 0xE032
	KeyBrowserBack      KeyCode = 0xE06A
	KeyBrowserForward   KeyCode = 0xE069
	KeyBrowserStop      KeyCode = 0xE068
	KeyBrowserRefresh   KeyCode = 0xE067
	KeyBrowserFavorites KeyCode = 0xE066

	// Japanese layout keys
	KeyKatakana   KeyCode = 0x0070
	KeyUnderscore KeyCode = 0x0073
	KeyFurigana   KeyCode = 0x0077
	KeyKanji      KeyCode = 0x0079
	KeyHiragana   KeyCode = 0x007B
	KeyYen        KeyCode = 0x007D
	KeyKpComma    KeyCode = 0x007E

	// Sun keyboard keys
	KeySunHelp   KeyCode = 0xFF75
	KeySunStop   KeyCode = 0xFF78
	KeySunProps  KeyCode = 0xFF76
	KeySunFront  KeyCode = 0xFF77
	KeySunOpen   KeyCode = 0xFF74
	KeySunFind   KeyCode = 0xFF7E
	KeySunAgain  KeyCode = 0xFF79
	KeySunUndo   KeyCode = 0xFF7A
	KeySunCopy   KeyCode = 0xFF7C
	KeySunInsert KeyCode = 0xFF7D
	KeySunCut    KeyCode = 0xFF7B

	KeyCharUndefined KeyCode = 0xFFFF
)

// keyCodeNames doubles as the set of known codes: membership decides
// whether a raw code maps to itself or to KeyUndefined.
var keyCodeNames = map[KeyCode]string{
	KeyUndefined: "Undefined",
	KeyEscape:    "Escape",

	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",

	KeyBackquote: "Backquote",
	Key1:         "1", Key2: "2", Key3: "3", Key4: "4", Key5: "5",
	Key6: "6", Key7: "7", Key8: "8", Key9: "9", Key0: "0",
	KeyMinus: "Minus", KeyEquals: "Equals", KeyBackspace: "Backspace",
	KeyTab: "Tab", KeyCapsLock: "CapsLock",

	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G",
	KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N",
	KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U",
	KeyV: "V", KeyW: "W", KeyX: "X", KeyY: "Y", KeyZ: "Z",

	KeyOpenBracket: "OpenBracket", KeyCloseBracket: "CloseBracket", KeyBackslash: "Backslash",
	KeySemicolon: "Semicolon", KeyQuote: "Quote", KeyEnter: "Enter",
	KeyComma: "Comma", KeyPeriod: "Period", KeySlash: "Slash",
	KeySpace: "Space",

	KeyPrintScreen: "PrintScreen", KeyScrollLock: "ScrollLock", KeyPause: "Pause",
	KeyLesserGreater: "LesserGreater",
	KeyInsert:        "Insert", KeyDelete: "Delete", KeyHome: "Home", KeyEnd: "End",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyUp: "Up", KeyLeft: "Left", KeyClear: "Clear", KeyRight: "Right", KeyDown: "Down",

	KeyNumLock:  "NumLock",
	KeyKpDivide: "KpDivide", KeyKpMultiply: "KpMultiply", KeyKpSubtract: "KpSubtract",
	KeyKpEquals: "KpEquals", KeyKpAdd: "KpAdd", KeyKpEnter: "KpEnter", KeyKpSeparator: "KpSeparator",
	KeyKp1: "Kp1", KeyKp2: "Kp2", KeyKp3: "Kp3", KeyKp4: "Kp4", KeyKp5: "Kp5",
	KeyKp6: "Kp6", KeyKp7: "Kp7", KeyKp8: "Kp8", KeyKp9: "Kp9", KeyKp0: "Kp0",
	KeyKpEnd: "KpEnd", KeyKpDown: "KpDown", KeyKpPageDown: "KpPageDown", KeyKpLeft: "KpLeft",
	KeyKpClear: "KpClear", KeyKpRight: "KpRight", KeyKpHome: "KpHome", KeyKpUp: "KpUp",
	KeyKpPageUp: "KpPageUp", KeyKpInsert: "KpInsert", KeyKpDelete: "KpDelete",

	KeyShiftL: "ShiftL", KeyShiftR: "ShiftR",
	KeyControlL: "ControlL", KeyControlR: "ControlR",
	KeyAltL: "AltL", KeyAltR: "AltR",
	KeyMetaL: "MetaL", KeyMetaR: "MetaR",
	KeyContextMenu: "ContextMenu",

	KeyPower: "Power", KeySleep: "Sleep", KeyWake: "Wake",

	KeyMediaPlay: "MediaPlay", KeyMediaStop: "MediaStop",
	KeyMediaPrevious: "MediaPrevious", KeyMediaNext: "MediaNext",
	KeyMediaSelect: "MediaSelect", KeyMediaEject: "MediaEject",
	KeyVolumeMute: "VolumeMute", KeyVolumeUp: "VolumeUp", KeyVolumeDown: "VolumeDown",

	KeyAppMail: "AppMail", KeyAppCalculator: "AppCalculator",
	KeyAppMusic: "AppMusic", KeyAppPictures: "AppPictures",

	KeyBrowserSearch: "BrowserSearch", KeyBrowserHome: "BrowserHome",
	KeyBrowserBack: "BrowserBack", KeyBrowserForward: "BrowserForward",
	KeyBrowserStop: "BrowserStop", KeyBrowserRefresh: "BrowserRefresh",
	KeyBrowserFavorites: "BrowserFavorites",

	KeyKatakana: "Katakana", KeyUnderscore: "Underscore", KeyFurigana: "Furigana",
	KeyKanji: "Kanji", KeyHiragana: "Hiragana", KeyYen: "Yen", KeyKpComma: "KpComma",

	KeySunHelp: "SunHelp", KeySunStop: "SunStop", KeySunProps: "SunProps",
	KeySunFront: "SunFront", KeySunOpen: "SunOpen", KeySunFind: "SunFind",
	KeySunAgain: "SunAgain", KeySunUndo: "SunUndo", KeySunCopy: "SunCopy",
	KeySunInsert: "SunInsert", KeySunCut: "SunCut",

	KeyCharUndefined: "CharUndefined",
}

// KeyCodeFromRaw maps a native key code to a KeyCode. The mapping is
// total: codes outside the known set yield KeyUndefined.
func KeyCodeFromRaw(code uint32) KeyCode {
	if code > 0xFFFF {
		return KeyUndefined
	}
	kc := KeyCode(code)
	if _, ok := keyCodeNames[kc]; !ok {
		return KeyUndefined
	}
	return kc
}

// String returns the symbolic key name, or a hex rendering for codes
// outside the known set.
func (k KeyCode) String() string {
	if name, ok := keyCodeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%#04x)", uint16(k))
}

// IsModifier reports whether the key is one of the eight modifiers.
func (k KeyCode) IsModifier() bool {
	switch k {
	case KeyShiftL, KeyShiftR, KeyControlL, KeyControlR, KeyAltL, KeyAltR, KeyMetaL, KeyMetaR:
		return true
	}
	return false
}
