//go:build linux

// Code derived from the KEY_* constant table in
// internal/linuxinput/eventCodes.go: one entry per evdev key name, in
// kernel definition order. Used by ParseKeyCode to validate config-file
// key names.
package mapping

import "github.com/andrieee44/evremap/internal/linuxinput"

var keyCodeByName = map[string]linuxinput.EventCode{
	"KEY_RESERVED": linuxinput.KEY_RESERVED,
	"KEY_ESC": linuxinput.KEY_ESC,
	"KEY_1": linuxinput.KEY_1,
	"KEY_2": linuxinput.KEY_2,
	"KEY_3": linuxinput.KEY_3,
	"KEY_4": linuxinput.KEY_4,
	"KEY_5": linuxinput.KEY_5,
	"KEY_6": linuxinput.KEY_6,
	"KEY_7": linuxinput.KEY_7,
	"KEY_8": linuxinput.KEY_8,
	"KEY_9": linuxinput.KEY_9,
	"KEY_0": linuxinput.KEY_0,
	"KEY_MINUS": linuxinput.KEY_MINUS,
	"KEY_EQUAL": linuxinput.KEY_EQUAL,
	"KEY_BACKSPACE": linuxinput.KEY_BACKSPACE,
	"KEY_TAB": linuxinput.KEY_TAB,
	"KEY_Q": linuxinput.KEY_Q,
	"KEY_W": linuxinput.KEY_W,
	"KEY_E": linuxinput.KEY_E,
	"KEY_R": linuxinput.KEY_R,
	"KEY_T": linuxinput.KEY_T,
	"KEY_Y": linuxinput.KEY_Y,
	"KEY_U": linuxinput.KEY_U,
	"KEY_I": linuxinput.KEY_I,
	"KEY_O": linuxinput.KEY_O,
	"KEY_P": linuxinput.KEY_P,
	"KEY_LEFTBRACE": linuxinput.KEY_LEFTBRACE,
	"KEY_RIGHTBRACE": linuxinput.KEY_RIGHTBRACE,
	"KEY_ENTER": linuxinput.KEY_ENTER,
	"KEY_LEFTCTRL": linuxinput.KEY_LEFTCTRL,
	"KEY_A": linuxinput.KEY_A,
	"KEY_S": linuxinput.KEY_S,
	"KEY_D": linuxinput.KEY_D,
	"KEY_F": linuxinput.KEY_F,
	"KEY_G": linuxinput.KEY_G,
	"KEY_H": linuxinput.KEY_H,
	"KEY_J": linuxinput.KEY_J,
	"KEY_K": linuxinput.KEY_K,
	"KEY_L": linuxinput.KEY_L,
	"KEY_SEMICOLON": linuxinput.KEY_SEMICOLON,
	"KEY_APOSTROPHE": linuxinput.KEY_APOSTROPHE,
	"KEY_GRAVE": linuxinput.KEY_GRAVE,
	"KEY_LEFTSHIFT": linuxinput.KEY_LEFTSHIFT,
	"KEY_BACKSLASH": linuxinput.KEY_BACKSLASH,
	"KEY_Z": linuxinput.KEY_Z,
	"KEY_X": linuxinput.KEY_X,
	"KEY_C": linuxinput.KEY_C,
	"KEY_V": linuxinput.KEY_V,
	"KEY_B": linuxinput.KEY_B,
	"KEY_N": linuxinput.KEY_N,
	"KEY_M": linuxinput.KEY_M,
	"KEY_COMMA": linuxinput.KEY_COMMA,
	"KEY_DOT": linuxinput.KEY_DOT,
	"KEY_SLASH": linuxinput.KEY_SLASH,
	"KEY_RIGHTSHIFT": linuxinput.KEY_RIGHTSHIFT,
	"KEY_KPASTERISK": linuxinput.KEY_KPASTERISK,
	"KEY_LEFTALT": linuxinput.KEY_LEFTALT,
	"KEY_SPACE": linuxinput.KEY_SPACE,
	"KEY_CAPSLOCK": linuxinput.KEY_CAPSLOCK,
	"KEY_F1": linuxinput.KEY_F1,
	"KEY_F2": linuxinput.KEY_F2,
	"KEY_F3": linuxinput.KEY_F3,
	"KEY_F4": linuxinput.KEY_F4,
	"KEY_F5": linuxinput.KEY_F5,
	"KEY_F6": linuxinput.KEY_F6,
	"KEY_F7": linuxinput.KEY_F7,
	"KEY_F8": linuxinput.KEY_F8,
	"KEY_F9": linuxinput.KEY_F9,
	"KEY_F10": linuxinput.KEY_F10,
	"KEY_NUMLOCK": linuxinput.KEY_NUMLOCK,
	"KEY_SCROLLLOCK": linuxinput.KEY_SCROLLLOCK,
	"KEY_KP7": linuxinput.KEY_KP7,
	"KEY_KP8": linuxinput.KEY_KP8,
	"KEY_KP9": linuxinput.KEY_KP9,
	"KEY_KPMINUS": linuxinput.KEY_KPMINUS,
	"KEY_KP4": linuxinput.KEY_KP4,
	"KEY_KP5": linuxinput.KEY_KP5,
	"KEY_KP6": linuxinput.KEY_KP6,
	"KEY_KPPLUS": linuxinput.KEY_KPPLUS,
	"KEY_KP1": linuxinput.KEY_KP1,
	"KEY_KP2": linuxinput.KEY_KP2,
	"KEY_KP3": linuxinput.KEY_KP3,
	"KEY_KP0": linuxinput.KEY_KP0,
	"KEY_KPDOT": linuxinput.KEY_KPDOT,
	"KEY_ZENKAKUHANKAKU": linuxinput.KEY_ZENKAKUHANKAKU,
	"KEY_102ND": linuxinput.KEY_102ND,
	"KEY_F11": linuxinput.KEY_F11,
	"KEY_F12": linuxinput.KEY_F12,
	"KEY_RO": linuxinput.KEY_RO,
	"KEY_KATAKANA": linuxinput.KEY_KATAKANA,
	"KEY_HIRAGANA": linuxinput.KEY_HIRAGANA,
	"KEY_HENKAN": linuxinput.KEY_HENKAN,
	"KEY_KATAKANAHIRAGANA": linuxinput.KEY_KATAKANAHIRAGANA,
	"KEY_MUHENKAN": linuxinput.KEY_MUHENKAN,
	"KEY_KPJPCOMMA": linuxinput.KEY_KPJPCOMMA,
	"KEY_KPENTER": linuxinput.KEY_KPENTER,
	"KEY_RIGHTCTRL": linuxinput.KEY_RIGHTCTRL,
	"KEY_KPSLASH": linuxinput.KEY_KPSLASH,
	"KEY_SYSRQ": linuxinput.KEY_SYSRQ,
	"KEY_RIGHTALT": linuxinput.KEY_RIGHTALT,
	"KEY_LINEFEED": linuxinput.KEY_LINEFEED,
	"KEY_HOME": linuxinput.KEY_HOME,
	"KEY_UP": linuxinput.KEY_UP,
	"KEY_PAGEUP": linuxinput.KEY_PAGEUP,
	"KEY_LEFT": linuxinput.KEY_LEFT,
	"KEY_RIGHT": linuxinput.KEY_RIGHT,
	"KEY_END": linuxinput.KEY_END,
	"KEY_DOWN": linuxinput.KEY_DOWN,
	"KEY_PAGEDOWN": linuxinput.KEY_PAGEDOWN,
	"KEY_INSERT": linuxinput.KEY_INSERT,
	"KEY_DELETE": linuxinput.KEY_DELETE,
	"KEY_MACRO": linuxinput.KEY_MACRO,
	"KEY_MUTE": linuxinput.KEY_MUTE,
	"KEY_VOLUMEDOWN": linuxinput.KEY_VOLUMEDOWN,
	"KEY_VOLUMEUP": linuxinput.KEY_VOLUMEUP,
	"KEY_POWER": linuxinput.KEY_POWER,
	"KEY_KPEQUAL": linuxinput.KEY_KPEQUAL,
	"KEY_KPPLUSMINUS": linuxinput.KEY_KPPLUSMINUS,
	"KEY_PAUSE": linuxinput.KEY_PAUSE,
	"KEY_SCALE": linuxinput.KEY_SCALE,
	"KEY_KPCOMMA": linuxinput.KEY_KPCOMMA,
	"KEY_HANGEUL": linuxinput.KEY_HANGEUL,
	"KEY_HANGUEL": linuxinput.KEY_HANGUEL,
	"KEY_HANJA": linuxinput.KEY_HANJA,
	"KEY_YEN": linuxinput.KEY_YEN,
	"KEY_LEFTMETA": linuxinput.KEY_LEFTMETA,
	"KEY_RIGHTMETA": linuxinput.KEY_RIGHTMETA,
	"KEY_COMPOSE": linuxinput.KEY_COMPOSE,
	"KEY_STOP": linuxinput.KEY_STOP,
	"KEY_AGAIN": linuxinput.KEY_AGAIN,
	"KEY_PROPS": linuxinput.KEY_PROPS,
	"KEY_UNDO": linuxinput.KEY_UNDO,
	"KEY_FRONT": linuxinput.KEY_FRONT,
	"KEY_COPY": linuxinput.KEY_COPY,
	"KEY_OPEN": linuxinput.KEY_OPEN,
	"KEY_PASTE": linuxinput.KEY_PASTE,
	"KEY_FIND": linuxinput.KEY_FIND,
	"KEY_CUT": linuxinput.KEY_CUT,
	"KEY_HELP": linuxinput.KEY_HELP,
	"KEY_MENU": linuxinput.KEY_MENU,
	"KEY_CALC": linuxinput.KEY_CALC,
	"KEY_SETUP": linuxinput.KEY_SETUP,
	"KEY_SLEEP": linuxinput.KEY_SLEEP,
	"KEY_WAKEUP": linuxinput.KEY_WAKEUP,
	"KEY_FILE": linuxinput.KEY_FILE,
	"KEY_SENDFILE": linuxinput.KEY_SENDFILE,
	"KEY_DELETEFILE": linuxinput.KEY_DELETEFILE,
	"KEY_XFER": linuxinput.KEY_XFER,
	"KEY_PROG1": linuxinput.KEY_PROG1,
	"KEY_PROG2": linuxinput.KEY_PROG2,
	"KEY_WWW": linuxinput.KEY_WWW,
	"KEY_MSDOS": linuxinput.KEY_MSDOS,
	"KEY_COFFEE": linuxinput.KEY_COFFEE,
	"KEY_SCREENLOCK": linuxinput.KEY_SCREENLOCK,
	"KEY_ROTATE_DISPLAY": linuxinput.KEY_ROTATE_DISPLAY,
	"KEY_DIRECTION": linuxinput.KEY_DIRECTION,
	"KEY_CYCLEWINDOWS": linuxinput.KEY_CYCLEWINDOWS,
	"KEY_MAIL": linuxinput.KEY_MAIL,
	"KEY_BOOKMARKS": linuxinput.KEY_BOOKMARKS,
	"KEY_COMPUTER": linuxinput.KEY_COMPUTER,
	"KEY_BACK": linuxinput.KEY_BACK,
	"KEY_FORWARD": linuxinput.KEY_FORWARD,
	"KEY_CLOSECD": linuxinput.KEY_CLOSECD,
	"KEY_EJECTCD": linuxinput.KEY_EJECTCD,
	"KEY_EJECTCLOSECD": linuxinput.KEY_EJECTCLOSECD,
	"KEY_NEXTSONG": linuxinput.KEY_NEXTSONG,
	"KEY_PLAYPAUSE": linuxinput.KEY_PLAYPAUSE,
	"KEY_PREVIOUSSONG": linuxinput.KEY_PREVIOUSSONG,
	"KEY_STOPCD": linuxinput.KEY_STOPCD,
	"KEY_RECORD": linuxinput.KEY_RECORD,
	"KEY_REWIND": linuxinput.KEY_REWIND,
	"KEY_PHONE": linuxinput.KEY_PHONE,
	"KEY_ISO": linuxinput.KEY_ISO,
	"KEY_CONFIG": linuxinput.KEY_CONFIG,
	"KEY_HOMEPAGE": linuxinput.KEY_HOMEPAGE,
	"KEY_REFRESH": linuxinput.KEY_REFRESH,
	"KEY_EXIT": linuxinput.KEY_EXIT,
	"KEY_MOVE": linuxinput.KEY_MOVE,
	"KEY_EDIT": linuxinput.KEY_EDIT,
	"KEY_SCROLLUP": linuxinput.KEY_SCROLLUP,
	"KEY_SCROLLDOWN": linuxinput.KEY_SCROLLDOWN,
	"KEY_KPLEFTPAREN": linuxinput.KEY_KPLEFTPAREN,
	"KEY_KPRIGHTPAREN": linuxinput.KEY_KPRIGHTPAREN,
	"KEY_NEW": linuxinput.KEY_NEW,
	"KEY_REDO": linuxinput.KEY_REDO,
	"KEY_F13": linuxinput.KEY_F13,
	"KEY_F14": linuxinput.KEY_F14,
	"KEY_F15": linuxinput.KEY_F15,
	"KEY_F16": linuxinput.KEY_F16,
	"KEY_F17": linuxinput.KEY_F17,
	"KEY_F18": linuxinput.KEY_F18,
	"KEY_F19": linuxinput.KEY_F19,
	"KEY_F20": linuxinput.KEY_F20,
	"KEY_F21": linuxinput.KEY_F21,
	"KEY_F22": linuxinput.KEY_F22,
	"KEY_F23": linuxinput.KEY_F23,
	"KEY_F24": linuxinput.KEY_F24,
	"KEY_PLAYCD": linuxinput.KEY_PLAYCD,
	"KEY_PAUSECD": linuxinput.KEY_PAUSECD,
	"KEY_PROG3": linuxinput.KEY_PROG3,
	"KEY_PROG4": linuxinput.KEY_PROG4,
	"KEY_ALL_APPLICATIONS": linuxinput.KEY_ALL_APPLICATIONS,
	"KEY_DASHBOARD": linuxinput.KEY_DASHBOARD,
	"KEY_SUSPEND": linuxinput.KEY_SUSPEND,
	"KEY_CLOSE": linuxinput.KEY_CLOSE,
	"KEY_PLAY": linuxinput.KEY_PLAY,
	"KEY_FASTFORWARD": linuxinput.KEY_FASTFORWARD,
	"KEY_BASSBOOST": linuxinput.KEY_BASSBOOST,
	"KEY_PRINT": linuxinput.KEY_PRINT,
	"KEY_HP": linuxinput.KEY_HP,
	"KEY_CAMERA": linuxinput.KEY_CAMERA,
	"KEY_SOUND": linuxinput.KEY_SOUND,
	"KEY_QUESTION": linuxinput.KEY_QUESTION,
	"KEY_EMAIL": linuxinput.KEY_EMAIL,
	"KEY_CHAT": linuxinput.KEY_CHAT,
	"KEY_SEARCH": linuxinput.KEY_SEARCH,
	"KEY_CONNECT": linuxinput.KEY_CONNECT,
	"KEY_FINANCE": linuxinput.KEY_FINANCE,
	"KEY_SPORT": linuxinput.KEY_SPORT,
	"KEY_SHOP": linuxinput.KEY_SHOP,
	"KEY_ALTERASE": linuxinput.KEY_ALTERASE,
	"KEY_CANCEL": linuxinput.KEY_CANCEL,
	"KEY_BRIGHTNESSDOWN": linuxinput.KEY_BRIGHTNESSDOWN,
	"KEY_BRIGHTNESSUP": linuxinput.KEY_BRIGHTNESSUP,
	"KEY_MEDIA": linuxinput.KEY_MEDIA,
	"KEY_SWITCHVIDEOMODE": linuxinput.KEY_SWITCHVIDEOMODE,
	"KEY_KBDILLUMTOGGLE": linuxinput.KEY_KBDILLUMTOGGLE,
	"KEY_KBDILLUMDOWN": linuxinput.KEY_KBDILLUMDOWN,
	"KEY_KBDILLUMUP": linuxinput.KEY_KBDILLUMUP,
	"KEY_SEND": linuxinput.KEY_SEND,
	"KEY_REPLY": linuxinput.KEY_REPLY,
	"KEY_FORWARDMAIL": linuxinput.KEY_FORWARDMAIL,
	"KEY_SAVE": linuxinput.KEY_SAVE,
	"KEY_DOCUMENTS": linuxinput.KEY_DOCUMENTS,
	"KEY_BATTERY": linuxinput.KEY_BATTERY,
	"KEY_BLUETOOTH": linuxinput.KEY_BLUETOOTH,
	"KEY_WLAN": linuxinput.KEY_WLAN,
	"KEY_UWB": linuxinput.KEY_UWB,
	"KEY_UNKNOWN": linuxinput.KEY_UNKNOWN,
	"KEY_VIDEO_NEXT": linuxinput.KEY_VIDEO_NEXT,
	"KEY_VIDEO_PREV": linuxinput.KEY_VIDEO_PREV,
	"KEY_BRIGHTNESS_CYCLE": linuxinput.KEY_BRIGHTNESS_CYCLE,
	"KEY_BRIGHTNESS_AUTO": linuxinput.KEY_BRIGHTNESS_AUTO,
	"KEY_BRIGHTNESS_ZERO": linuxinput.KEY_BRIGHTNESS_ZERO,
	"KEY_DISPLAY_OFF": linuxinput.KEY_DISPLAY_OFF,
	"KEY_WWAN": linuxinput.KEY_WWAN,
	"KEY_WIMAX": linuxinput.KEY_WIMAX,
	"KEY_RFKILL": linuxinput.KEY_RFKILL,
	"KEY_MICMUTE": linuxinput.KEY_MICMUTE,
	"KEY_OK": linuxinput.KEY_OK,
	"KEY_SELECT": linuxinput.KEY_SELECT,
	"KEY_GOTO": linuxinput.KEY_GOTO,
	"KEY_CLEAR": linuxinput.KEY_CLEAR,
	"KEY_POWER2": linuxinput.KEY_POWER2,
	"KEY_OPTION": linuxinput.KEY_OPTION,
	"KEY_INFO": linuxinput.KEY_INFO,
	"KEY_TIME": linuxinput.KEY_TIME,
	"KEY_VENDOR": linuxinput.KEY_VENDOR,
	"KEY_ARCHIVE": linuxinput.KEY_ARCHIVE,
	"KEY_PROGRAM": linuxinput.KEY_PROGRAM,
	"KEY_CHANNEL": linuxinput.KEY_CHANNEL,
	"KEY_FAVORITES": linuxinput.KEY_FAVORITES,
	"KEY_EPG": linuxinput.KEY_EPG,
	"KEY_PVR": linuxinput.KEY_PVR,
	"KEY_MHP": linuxinput.KEY_MHP,
	"KEY_LANGUAGE": linuxinput.KEY_LANGUAGE,
	"KEY_TITLE": linuxinput.KEY_TITLE,
	"KEY_SUBTITLE": linuxinput.KEY_SUBTITLE,
	"KEY_ANGLE": linuxinput.KEY_ANGLE,
	"KEY_FULL_SCREEN": linuxinput.KEY_FULL_SCREEN,
	"KEY_ZOOM": linuxinput.KEY_ZOOM,
	"KEY_MODE": linuxinput.KEY_MODE,
	"KEY_KEYBOARD": linuxinput.KEY_KEYBOARD,
	"KEY_ASPECT_RATIO": linuxinput.KEY_ASPECT_RATIO,
	"KEY_SCREEN": linuxinput.KEY_SCREEN,
	"KEY_PC": linuxinput.KEY_PC,
	"KEY_TV": linuxinput.KEY_TV,
	"KEY_TV2": linuxinput.KEY_TV2,
	"KEY_VCR": linuxinput.KEY_VCR,
	"KEY_VCR2": linuxinput.KEY_VCR2,
	"KEY_SAT": linuxinput.KEY_SAT,
	"KEY_SAT2": linuxinput.KEY_SAT2,
	"KEY_CD": linuxinput.KEY_CD,
	"KEY_TAPE": linuxinput.KEY_TAPE,
	"KEY_RADIO": linuxinput.KEY_RADIO,
	"KEY_TUNER": linuxinput.KEY_TUNER,
	"KEY_PLAYER": linuxinput.KEY_PLAYER,
	"KEY_TEXT": linuxinput.KEY_TEXT,
	"KEY_DVD": linuxinput.KEY_DVD,
	"KEY_AUX": linuxinput.KEY_AUX,
	"KEY_MP3": linuxinput.KEY_MP3,
	"KEY_AUDIO": linuxinput.KEY_AUDIO,
	"KEY_VIDEO": linuxinput.KEY_VIDEO,
	"KEY_DIRECTORY": linuxinput.KEY_DIRECTORY,
	"KEY_LIST": linuxinput.KEY_LIST,
	"KEY_MEMO": linuxinput.KEY_MEMO,
	"KEY_CALENDAR": linuxinput.KEY_CALENDAR,
	"KEY_RED": linuxinput.KEY_RED,
	"KEY_GREEN": linuxinput.KEY_GREEN,
	"KEY_YELLOW": linuxinput.KEY_YELLOW,
	"KEY_BLUE": linuxinput.KEY_BLUE,
	"KEY_CHANNELUP": linuxinput.KEY_CHANNELUP,
	"KEY_CHANNELDOWN": linuxinput.KEY_CHANNELDOWN,
	"KEY_FIRST": linuxinput.KEY_FIRST,
	"KEY_LAST": linuxinput.KEY_LAST,
	"KEY_AB": linuxinput.KEY_AB,
	"KEY_NEXT": linuxinput.KEY_NEXT,
	"KEY_RESTART": linuxinput.KEY_RESTART,
	"KEY_SLOW": linuxinput.KEY_SLOW,
	"KEY_SHUFFLE": linuxinput.KEY_SHUFFLE,
	"KEY_BREAK": linuxinput.KEY_BREAK,
	"KEY_PREVIOUS": linuxinput.KEY_PREVIOUS,
	"KEY_DIGITS": linuxinput.KEY_DIGITS,
	"KEY_TEEN": linuxinput.KEY_TEEN,
	"KEY_TWEN": linuxinput.KEY_TWEN,
	"KEY_VIDEOPHONE": linuxinput.KEY_VIDEOPHONE,
	"KEY_GAMES": linuxinput.KEY_GAMES,
	"KEY_ZOOMIN": linuxinput.KEY_ZOOMIN,
	"KEY_ZOOMOUT": linuxinput.KEY_ZOOMOUT,
	"KEY_ZOOMRESET": linuxinput.KEY_ZOOMRESET,
	"KEY_WORDPROCESSOR": linuxinput.KEY_WORDPROCESSOR,
	"KEY_EDITOR": linuxinput.KEY_EDITOR,
	"KEY_SPREADSHEET": linuxinput.KEY_SPREADSHEET,
	"KEY_GRAPHICSEDITOR": linuxinput.KEY_GRAPHICSEDITOR,
	"KEY_PRESENTATION": linuxinput.KEY_PRESENTATION,
	"KEY_DATABASE": linuxinput.KEY_DATABASE,
	"KEY_NEWS": linuxinput.KEY_NEWS,
	"KEY_VOICEMAIL": linuxinput.KEY_VOICEMAIL,
	"KEY_ADDRESSBOOK": linuxinput.KEY_ADDRESSBOOK,
	"KEY_MESSENGER": linuxinput.KEY_MESSENGER,
	"KEY_DISPLAYTOGGLE": linuxinput.KEY_DISPLAYTOGGLE,
	"KEY_BRIGHTNESS_TOGGLE": linuxinput.KEY_BRIGHTNESS_TOGGLE,
	"KEY_SPELLCHECK": linuxinput.KEY_SPELLCHECK,
	"KEY_LOGOFF": linuxinput.KEY_LOGOFF,
	"KEY_DOLLAR": linuxinput.KEY_DOLLAR,
	"KEY_EURO": linuxinput.KEY_EURO,
	"KEY_FRAMEBACK": linuxinput.KEY_FRAMEBACK,
	"KEY_FRAMEFORWARD": linuxinput.KEY_FRAMEFORWARD,
	"KEY_CONTEXT_MENU": linuxinput.KEY_CONTEXT_MENU,
	"KEY_MEDIA_REPEAT": linuxinput.KEY_MEDIA_REPEAT,
	"KEY_10CHANNELSUP": linuxinput.KEY_10CHANNELSUP,
	"KEY_10CHANNELSDOWN": linuxinput.KEY_10CHANNELSDOWN,
	"KEY_IMAGES": linuxinput.KEY_IMAGES,
	"KEY_NOTIFICATION_CENTER": linuxinput.KEY_NOTIFICATION_CENTER,
	"KEY_PICKUP_PHONE": linuxinput.KEY_PICKUP_PHONE,
	"KEY_HANGUP_PHONE": linuxinput.KEY_HANGUP_PHONE,
	"KEY_LINK_PHONE": linuxinput.KEY_LINK_PHONE,
	"KEY_DEL_EOL": linuxinput.KEY_DEL_EOL,
	"KEY_DEL_EOS": linuxinput.KEY_DEL_EOS,
	"KEY_INS_LINE": linuxinput.KEY_INS_LINE,
	"KEY_DEL_LINE": linuxinput.KEY_DEL_LINE,
	"KEY_FN": linuxinput.KEY_FN,
	"KEY_FN_ESC": linuxinput.KEY_FN_ESC,
	"KEY_FN_F1": linuxinput.KEY_FN_F1,
	"KEY_FN_F2": linuxinput.KEY_FN_F2,
	"KEY_FN_F3": linuxinput.KEY_FN_F3,
	"KEY_FN_F4": linuxinput.KEY_FN_F4,
	"KEY_FN_F5": linuxinput.KEY_FN_F5,
	"KEY_FN_F6": linuxinput.KEY_FN_F6,
	"KEY_FN_F7": linuxinput.KEY_FN_F7,
	"KEY_FN_F8": linuxinput.KEY_FN_F8,
	"KEY_FN_F9": linuxinput.KEY_FN_F9,
	"KEY_FN_F10": linuxinput.KEY_FN_F10,
	"KEY_FN_F11": linuxinput.KEY_FN_F11,
	"KEY_FN_F12": linuxinput.KEY_FN_F12,
	"KEY_FN_1": linuxinput.KEY_FN_1,
	"KEY_FN_2": linuxinput.KEY_FN_2,
	"KEY_FN_D": linuxinput.KEY_FN_D,
	"KEY_FN_E": linuxinput.KEY_FN_E,
	"KEY_FN_F": linuxinput.KEY_FN_F,
	"KEY_FN_S": linuxinput.KEY_FN_S,
	"KEY_FN_B": linuxinput.KEY_FN_B,
	"KEY_FN_RIGHT_SHIFT": linuxinput.KEY_FN_RIGHT_SHIFT,
	"KEY_BRL_DOT1": linuxinput.KEY_BRL_DOT1,
	"KEY_BRL_DOT2": linuxinput.KEY_BRL_DOT2,
	"KEY_BRL_DOT3": linuxinput.KEY_BRL_DOT3,
	"KEY_BRL_DOT4": linuxinput.KEY_BRL_DOT4,
	"KEY_BRL_DOT5": linuxinput.KEY_BRL_DOT5,
	"KEY_BRL_DOT6": linuxinput.KEY_BRL_DOT6,
	"KEY_BRL_DOT7": linuxinput.KEY_BRL_DOT7,
	"KEY_BRL_DOT8": linuxinput.KEY_BRL_DOT8,
	"KEY_BRL_DOT9": linuxinput.KEY_BRL_DOT9,
	"KEY_BRL_DOT10": linuxinput.KEY_BRL_DOT10,
	"KEY_NUMERIC_0": linuxinput.KEY_NUMERIC_0,
	"KEY_NUMERIC_1": linuxinput.KEY_NUMERIC_1,
	"KEY_NUMERIC_2": linuxinput.KEY_NUMERIC_2,
	"KEY_NUMERIC_3": linuxinput.KEY_NUMERIC_3,
	"KEY_NUMERIC_4": linuxinput.KEY_NUMERIC_4,
	"KEY_NUMERIC_5": linuxinput.KEY_NUMERIC_5,
	"KEY_NUMERIC_6": linuxinput.KEY_NUMERIC_6,
	"KEY_NUMERIC_7": linuxinput.KEY_NUMERIC_7,
	"KEY_NUMERIC_8": linuxinput.KEY_NUMERIC_8,
	"KEY_NUMERIC_9": linuxinput.KEY_NUMERIC_9,
	"KEY_NUMERIC_STAR": linuxinput.KEY_NUMERIC_STAR,
	"KEY_NUMERIC_POUND": linuxinput.KEY_NUMERIC_POUND,
	"KEY_NUMERIC_A": linuxinput.KEY_NUMERIC_A,
	"KEY_NUMERIC_B": linuxinput.KEY_NUMERIC_B,
	"KEY_NUMERIC_C": linuxinput.KEY_NUMERIC_C,
	"KEY_NUMERIC_D": linuxinput.KEY_NUMERIC_D,
	"KEY_CAMERA_FOCUS": linuxinput.KEY_CAMERA_FOCUS,
	"KEY_WPS_BUTTON": linuxinput.KEY_WPS_BUTTON,
	"KEY_TOUCHPAD_TOGGLE": linuxinput.KEY_TOUCHPAD_TOGGLE,
	"KEY_TOUCHPAD_ON": linuxinput.KEY_TOUCHPAD_ON,
	"KEY_TOUCHPAD_OFF": linuxinput.KEY_TOUCHPAD_OFF,
	"KEY_CAMERA_ZOOMIN": linuxinput.KEY_CAMERA_ZOOMIN,
	"KEY_CAMERA_ZOOMOUT": linuxinput.KEY_CAMERA_ZOOMOUT,
	"KEY_CAMERA_UP": linuxinput.KEY_CAMERA_UP,
	"KEY_CAMERA_DOWN": linuxinput.KEY_CAMERA_DOWN,
	"KEY_CAMERA_LEFT": linuxinput.KEY_CAMERA_LEFT,
	"KEY_CAMERA_RIGHT": linuxinput.KEY_CAMERA_RIGHT,
	"KEY_ATTENDANT_ON": linuxinput.KEY_ATTENDANT_ON,
	"KEY_ATTENDANT_OFF": linuxinput.KEY_ATTENDANT_OFF,
	"KEY_ATTENDANT_TOGGLE": linuxinput.KEY_ATTENDANT_TOGGLE,
	"KEY_LIGHTS_TOGGLE": linuxinput.KEY_LIGHTS_TOGGLE,
	"KEY_ALS_TOGGLE": linuxinput.KEY_ALS_TOGGLE,
	"KEY_ROTATE_LOCK_TOGGLE": linuxinput.KEY_ROTATE_LOCK_TOGGLE,
	"KEY_REFRESH_RATE_TOGGLE": linuxinput.KEY_REFRESH_RATE_TOGGLE,
	"KEY_BUTTONCONFIG": linuxinput.KEY_BUTTONCONFIG,
	"KEY_TASKMANAGER": linuxinput.KEY_TASKMANAGER,
	"KEY_JOURNAL": linuxinput.KEY_JOURNAL,
	"KEY_CONTROLPANEL": linuxinput.KEY_CONTROLPANEL,
	"KEY_APPSELECT": linuxinput.KEY_APPSELECT,
	"KEY_SCREENSAVER": linuxinput.KEY_SCREENSAVER,
	"KEY_VOICECOMMAND": linuxinput.KEY_VOICECOMMAND,
	"KEY_ASSISTANT": linuxinput.KEY_ASSISTANT,
	"KEY_KBD_LAYOUT_NEXT": linuxinput.KEY_KBD_LAYOUT_NEXT,
	"KEY_EMOJI_PICKER": linuxinput.KEY_EMOJI_PICKER,
	"KEY_DICTATE": linuxinput.KEY_DICTATE,
	"KEY_CAMERA_ACCESS_ENABLE": linuxinput.KEY_CAMERA_ACCESS_ENABLE,
	"KEY_CAMERA_ACCESS_DISABLE": linuxinput.KEY_CAMERA_ACCESS_DISABLE,
	"KEY_CAMERA_ACCESS_TOGGLE": linuxinput.KEY_CAMERA_ACCESS_TOGGLE,
	"KEY_ACCESSIBILITY": linuxinput.KEY_ACCESSIBILITY,
	"KEY_DO_NOT_DISTURB": linuxinput.KEY_DO_NOT_DISTURB,
	"KEY_BRIGHTNESS_MIN": linuxinput.KEY_BRIGHTNESS_MIN,
	"KEY_BRIGHTNESS_MAX": linuxinput.KEY_BRIGHTNESS_MAX,
	"KEY_KBDINPUTASSIST_PREV": linuxinput.KEY_KBDINPUTASSIST_PREV,
	"KEY_KBDINPUTASSIST_NEXT": linuxinput.KEY_KBDINPUTASSIST_NEXT,
	"KEY_KBDINPUTASSIST_PREVGROUP": linuxinput.KEY_KBDINPUTASSIST_PREVGROUP,
	"KEY_KBDINPUTASSIST_NEXTGROUP": linuxinput.KEY_KBDINPUTASSIST_NEXTGROUP,
	"KEY_KBDINPUTASSIST_ACCEPT": linuxinput.KEY_KBDINPUTASSIST_ACCEPT,
	"KEY_KBDINPUTASSIST_CANCEL": linuxinput.KEY_KBDINPUTASSIST_CANCEL,
	"KEY_RIGHT_UP": linuxinput.KEY_RIGHT_UP,
	"KEY_RIGHT_DOWN": linuxinput.KEY_RIGHT_DOWN,
	"KEY_LEFT_UP": linuxinput.KEY_LEFT_UP,
	"KEY_LEFT_DOWN": linuxinput.KEY_LEFT_DOWN,
	"KEY_ROOT_MENU": linuxinput.KEY_ROOT_MENU,
	"KEY_MEDIA_TOP_MENU": linuxinput.KEY_MEDIA_TOP_MENU,
	"KEY_NUMERIC_11": linuxinput.KEY_NUMERIC_11,
	"KEY_NUMERIC_12": linuxinput.KEY_NUMERIC_12,
	"KEY_AUDIO_DESC": linuxinput.KEY_AUDIO_DESC,
	"KEY_3D_MODE": linuxinput.KEY_3D_MODE,
	"KEY_NEXT_FAVORITE": linuxinput.KEY_NEXT_FAVORITE,
	"KEY_STOP_RECORD": linuxinput.KEY_STOP_RECORD,
	"KEY_PAUSE_RECORD": linuxinput.KEY_PAUSE_RECORD,
	"KEY_VOD": linuxinput.KEY_VOD,
	"KEY_UNMUTE": linuxinput.KEY_UNMUTE,
	"KEY_FASTREVERSE": linuxinput.KEY_FASTREVERSE,
	"KEY_SLOWREVERSE": linuxinput.KEY_SLOWREVERSE,
	"KEY_DATA": linuxinput.KEY_DATA,
	"KEY_ONSCREEN_KEYBOARD": linuxinput.KEY_ONSCREEN_KEYBOARD,
	"KEY_PRIVACY_SCREEN_TOGGLE": linuxinput.KEY_PRIVACY_SCREEN_TOGGLE,
	"KEY_SELECTIVE_SCREENSHOT": linuxinput.KEY_SELECTIVE_SCREENSHOT,
	"KEY_NEXT_ELEMENT": linuxinput.KEY_NEXT_ELEMENT,
	"KEY_PREVIOUS_ELEMENT": linuxinput.KEY_PREVIOUS_ELEMENT,
	"KEY_AUTOPILOT_ENGAGE_TOGGLE": linuxinput.KEY_AUTOPILOT_ENGAGE_TOGGLE,
	"KEY_MARK_WAYPOINT": linuxinput.KEY_MARK_WAYPOINT,
	"KEY_SOS": linuxinput.KEY_SOS,
	"KEY_NAV_CHART": linuxinput.KEY_NAV_CHART,
	"KEY_FISHING_CHART": linuxinput.KEY_FISHING_CHART,
	"KEY_SINGLE_RANGE_RADAR": linuxinput.KEY_SINGLE_RANGE_RADAR,
	"KEY_DUAL_RANGE_RADAR": linuxinput.KEY_DUAL_RANGE_RADAR,
	"KEY_RADAR_OVERLAY": linuxinput.KEY_RADAR_OVERLAY,
	"KEY_TRADITIONAL_SONAR": linuxinput.KEY_TRADITIONAL_SONAR,
	"KEY_CLEARVU_SONAR": linuxinput.KEY_CLEARVU_SONAR,
	"KEY_SIDEVU_SONAR": linuxinput.KEY_SIDEVU_SONAR,
	"KEY_NAV_INFO": linuxinput.KEY_NAV_INFO,
	"KEY_BRIGHTNESS_MENU": linuxinput.KEY_BRIGHTNESS_MENU,
	"KEY_MACRO1": linuxinput.KEY_MACRO1,
	"KEY_MACRO2": linuxinput.KEY_MACRO2,
	"KEY_MACRO3": linuxinput.KEY_MACRO3,
	"KEY_MACRO4": linuxinput.KEY_MACRO4,
	"KEY_MACRO5": linuxinput.KEY_MACRO5,
	"KEY_MACRO6": linuxinput.KEY_MACRO6,
	"KEY_MACRO7": linuxinput.KEY_MACRO7,
	"KEY_MACRO8": linuxinput.KEY_MACRO8,
	"KEY_MACRO9": linuxinput.KEY_MACRO9,
	"KEY_MACRO10": linuxinput.KEY_MACRO10,
	"KEY_MACRO11": linuxinput.KEY_MACRO11,
	"KEY_MACRO12": linuxinput.KEY_MACRO12,
	"KEY_MACRO13": linuxinput.KEY_MACRO13,
	"KEY_MACRO14": linuxinput.KEY_MACRO14,
	"KEY_MACRO15": linuxinput.KEY_MACRO15,
	"KEY_MACRO16": linuxinput.KEY_MACRO16,
	"KEY_MACRO17": linuxinput.KEY_MACRO17,
	"KEY_MACRO18": linuxinput.KEY_MACRO18,
	"KEY_MACRO19": linuxinput.KEY_MACRO19,
	"KEY_MACRO20": linuxinput.KEY_MACRO20,
	"KEY_MACRO21": linuxinput.KEY_MACRO21,
	"KEY_MACRO22": linuxinput.KEY_MACRO22,
	"KEY_MACRO23": linuxinput.KEY_MACRO23,
	"KEY_MACRO24": linuxinput.KEY_MACRO24,
	"KEY_MACRO25": linuxinput.KEY_MACRO25,
	"KEY_MACRO26": linuxinput.KEY_MACRO26,
	"KEY_MACRO27": linuxinput.KEY_MACRO27,
	"KEY_MACRO28": linuxinput.KEY_MACRO28,
	"KEY_MACRO29": linuxinput.KEY_MACRO29,
	"KEY_MACRO30": linuxinput.KEY_MACRO30,
	"KEY_MACRO_RECORD_START": linuxinput.KEY_MACRO_RECORD_START,
	"KEY_MACRO_RECORD_STOP": linuxinput.KEY_MACRO_RECORD_STOP,
	"KEY_MACRO_PRESET_CYCLE": linuxinput.KEY_MACRO_PRESET_CYCLE,
	"KEY_MACRO_PRESET1": linuxinput.KEY_MACRO_PRESET1,
	"KEY_MACRO_PRESET2": linuxinput.KEY_MACRO_PRESET2,
	"KEY_MACRO_PRESET3": linuxinput.KEY_MACRO_PRESET3,
	"KEY_KBD_LCD_MENU1": linuxinput.KEY_KBD_LCD_MENU1,
	"KEY_KBD_LCD_MENU2": linuxinput.KEY_KBD_LCD_MENU2,
	"KEY_KBD_LCD_MENU3": linuxinput.KEY_KBD_LCD_MENU3,
	"KEY_KBD_LCD_MENU4": linuxinput.KEY_KBD_LCD_MENU4,
	"KEY_KBD_LCD_MENU5": linuxinput.KEY_KBD_LCD_MENU5,
}
