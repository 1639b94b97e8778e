package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadCollisionData parses a TMX file and returns its blockers and spawn
// points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles from the wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				b := Blocker{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					W:      tileW,
					H:      tileH,
					Height: DefaultBlockerHeight,
					Kind:   "tile",
				}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					b.Elevation = tilesetTile.Properties.GetFloat("elevation")
					if h := tilesetTile.Properties.GetFloat("height"); h > 0 {
						b.Height = h
					}
				}
				data.Blockers = append(data.Blockers, b)
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Blockers":
			for _, o := range og.Objects {
				b := Blocker{
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					Elevation: o.Properties.GetFloat("elevation"),
					Height:    o.Properties.GetFloat("height"),
					Kind:      o.Properties.GetString("kind"),
				}
				if b.Height <= 0 {
					b.Height = DefaultBlockerHeight
				}
				if b.W <= 0 || b.H <= 0 {
					continue
				}
				data.Blockers = append(data.Blockers, b)
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:         o.X,
					Y:         o.Y,
					Elevation: o.Properties.GetFloat("elevation"),
					Yaw:       degrees(o.Properties.GetFloat("yaw")),
					Index:     o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	// Sort spawns by index, then left to right, for consistent selection
	sort.SliceStable(data.SpawnPoints, func(i, j int) bool {
		a, b := data.SpawnPoints[i], data.SpawnPoints[j]
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.X < b.X
	})

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		data, err := LoadCollisionData(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		stem := strings.TrimSuffix(path.Base(match), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
