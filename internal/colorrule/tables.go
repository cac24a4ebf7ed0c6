package colorrule

import "strings"

// extensionFlags maps a lowercase extension (without the leading dot) to
// the content flags it carries. Some extensions carry more than one flag
// (e.g. .wav is music and lossless). This is a representative subset of
// the static table in the source tool; it is data, not algorithm, so it
// is trimmed rather than reproduced exhaustively.
var extensionFlags = map[string]Flag{
	"bat": FlagExecutable, "cmd": FlagExecutable, "com": FlagExecutable, "exe": FlagExecutable,

	"doc": FlagDocument, "docx": FlagDocument, "pdf": FlagDocument, "md": FlagDocument,
	"odt": FlagDocument, "rtf": FlagDocument, "xls": FlagDocument, "xlsx": FlagDocument,
	"ppt": FlagDocument, "pptx": FlagDocument,

	"png": FlagImage, "jpg": FlagImage, "jpeg": FlagImage, "gif": FlagImage,
	"bmp": FlagImage, "svg": FlagImage, "webp": FlagImage, "ico": FlagImage,
	"tif": FlagImage, "tiff": FlagImage, "heic": FlagImage, "psd": FlagImage,

	"avi": FlagVideo, "mp4": FlagVideo, "mkv": FlagVideo, "mov": FlagVideo,
	"mpg": FlagVideo, "mpeg": FlagVideo, "webm": FlagVideo, "m4v": FlagVideo,

	"mp3": FlagMusic, "aac": FlagMusic, "ogg": FlagMusic,
	"wav": FlagMusic | FlagLossless, "flac": FlagMusic | FlagLossless, "alac": FlagMusic | FlagLossless,

	"zip": FlagCompressedArchive, "tar": FlagCompressedArchive, "gz": FlagCompressedArchive,
	"bz2": FlagCompressedArchive, "xz": FlagCompressedArchive, "7z": FlagCompressedArchive,
	"rar": FlagCompressedArchive, "tgz": FlagCompressedArchive, "zst": FlagCompressedArchive,

	"gpg": FlagCrypto, "asc": FlagCrypto, "pgp": FlagCrypto, "pem": FlagCrypto,
	"crt": FlagCrypto, "key": FlagCrypto, "pfx": FlagCrypto, "p12": FlagCrypto,

	"go": FlagSourceCode, "c": FlagSourceCode, "cpp": FlagSourceCode, "h": FlagSourceCode,
	"hpp": FlagSourceCode, "rs": FlagSourceCode, "py": FlagSourceCode, "js": FlagSourceCode,
	"ts": FlagSourceCode, "java": FlagSourceCode, "rb": FlagSourceCode, "cs": FlagSourceCode,

	"o": FlagCompiled, "obj": FlagCompiled, "class": FlagCompiled, "pyc": FlagCompiled,

	"tmp": FlagTemporary, "bak": FlagTemporary, "swp": FlagTemporary, "old": FlagTemporary,
}

// filenameFlags maps exact (case-insensitive) filenames to content flags,
// for build-system files that have no useful extension.
var filenameFlags = map[string]Flag{
	"makefile":        FlagBuild,
	"dockerfile":      FlagBuild,
	"cmakelists.txt":  FlagBuild,
	"sconstruct":      FlagBuild,
	"build.gradle":    FlagBuild,
	"pom.xml":         FlagBuild,
	"cargo.toml":      FlagBuild,
	"go.mod":          FlagBuild,
}

// FlagsForName derives the content-flag bitset for a filename from its
// exact (case-insensitive) name and, failing that, its extension.
func FlagsForName(name string) Flag {
	lower := strings.ToLower(name)
	if f, ok := filenameFlags[lower]; ok {
		return f
	}
	ext := extOf(lower)
	return extensionFlags[ext]
}

func extOf(lowerName string) string {
	i := strings.LastIndexByte(lowerName, '.')
	if i < 0 || i == len(lowerName)-1 {
		return ""
	}
	return lowerName[i+1:]
}

// FoldPathext merges PATHEXT-style extensions (".COM;.EXE;.BAT;.CMD",
// Windows convention, but honored on any platform so rule files are
// portable) into the executable flag set at startup, per spec.md §4.2
// ("The ex category auto-imports PATHEXT").
func FoldPathext(pathext string) {
	for _, part := range strings.Split(pathext, ";") {
		part = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(part)), ".")
		if part == "" {
			continue
		}
		extensionFlags[part] |= FlagExecutable
	}
}

// CategoryForAttr derives the coarse Category used as the first cascade
// step, per spec.md §4.2's ordered list: orphaned reparse, directory,
// reparse, readonly, hidden, compressed-attribute, temporary-attribute,
// regular file.
func CategoryForAttr(attr Attr, orphanedReparse bool) Category {
	switch {
	case orphanedReparse:
		return CategoryOrphan
	case attr&AttrDirectory != 0:
		return CategoryDirectory
	case attr&AttrReparsePoint != 0:
		return CategoryReparse
	case attr&AttrReadonly != 0:
		return CategoryReadonly
	case attr&AttrHidden != 0:
		return CategoryHidden
	case attr&AttrCompressed != 0:
		return CategoryCompressedAttribute
	case attr&AttrTemporary != 0:
		return CategoryTemporaryAttribute
	default:
		return CategoryFile
	}
}
