package input

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/CompassSecurity/keyleek/pkg/logging"
	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	"golift.io/xtractr"
)

var skippableDirectoryNames = []string{"node_modules", ".yarn", ".yarn-cache", ".npm", "venv", "vendor", ".go/pkg/mod/", ".git/"}

func isSkippable(name string) bool {
	return slices.ContainsFunc(skippableDirectoryNames, func(keyword string) bool {
		return strings.Contains(filepath.ToSlash(name), keyword)
	})
}

// extractArchive unpacks an archive into a temporary directory and loads every
// text member. Failures inside archives are logged and skipped.
func extractArchive(archiveName string, content []byte, opts Options, depth int) ([]Document, error) {
	if depth > opts.MaxDepth {
		log.Debug().Str("file", archiveName).Int("recursionDepth", depth).Msg("Max archive recursion depth reached, skipping further extraction")
		return nil, nil
	}

	fileType, err := filetype.Get(content)
	if err != nil {
		return nil, err
	}

	tmpArchiveFile, err := os.CreateTemp("", "keyleek-archive-*."+fileType.Extension)
	if err != nil {
		return nil, err
	}
	_ = tmpArchiveFile.Close()
	defer func() { _ = os.Remove(tmpArchiveFile.Name()) }()

	if err := os.WriteFile(tmpArchiveFile.Name(), content, format.FileUserReadWrite); err != nil {
		return nil, err
	}

	outDir, err := os.MkdirTemp("", "keyleek-archive-out-")
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.RemoveAll(outDir) }()

	x := &xtractr.XFile{
		FilePath:  tmpArchiveFile.Name(),
		OutputDir: outDir,
		FileMode:  format.FileUserReadWrite,
		DirMode:   format.DirUserOnly,
	}

	_, files, _, err := xtractr.ExtractFile(x)
	if err != nil || files == nil {
		log.Debug().Err(err).Str("archive", archiveName).Msg("Unable to extract archive")
		return nil, nil
	}

	slices.Sort(files)

	source := logging.SourceTypeArchive
	if depth > 1 {
		source = logging.SourceTypeNestedArchive
	}

	documents := []Document{}
	for _, fPath := range files {
		if info, err := os.Stat(fPath); err != nil || info.IsDir() {
			continue
		}

		memberName, err := filepath.Rel(outDir, fPath)
		if err != nil {
			memberName = filepath.Base(fPath)
		}
		memberName = filepath.ToSlash(memberName)

		if isSkippable(memberName) {
			log.Trace().Str("file", memberName).Str("archive", archiveName).Msg("Skipped archive member due to blocklist entry")
			continue
		}

		// #nosec G304 - Reading extracted files from temp directory, path controlled by xtractr library
		fileBytes, err := os.ReadFile(fPath)
		if err != nil {
			log.Debug().Err(err).Str("file", memberName).Msg("Cannot read extracted archive file")
			continue
		}
		if opts.MaxSize > 0 && int64(len(fileBytes)) > opts.MaxSize {
			log.Debug().Str("file", memberName).Int("size", len(fileBytes)).Msg("Skipped archive member exceeding max size")
			continue
		}

		if filetype.IsArchive(fileBytes) {
			log.Trace().Str("fileName", memberName).Str("parentArchive", archiveName).Int("depth", depth).Msg("Detected nested archive, recursing")
			nested, err := extractArchive(archiveName+":"+memberName, fileBytes, opts, depth+1)
			if err != nil {
				log.Debug().Err(err).Str("file", memberName).Msg("Failed extracting nested archive")
				continue
			}
			documents = append(documents, nested...)
			continue
		}

		kind, _ := filetype.Match(fileBytes)
		if kind != filetype.Unknown {
			log.Trace().Str("file", memberName).Str("type", kind.MIME.Value).Msg("Skipped binary archive member")
			continue
		}

		documents = append(documents, newDocument(memberName, source, archiveName, fileBytes, opts))
	}

	return documents, nil
}
