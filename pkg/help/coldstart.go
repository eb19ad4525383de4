package help

const ColdstartYAML = `# section-mapper Quick Start

snapshot_formats:
  json: "Render tree: {url, title, page_height, root, styles, texts, images}"
  html: "Serialized DOM with data-x, data-y, data-width, data-height (and data-bg) on elements"

commands:
  classify: |
    section-mapper classify --snapshot page.json

  classify_yaml_to_file: |
    section-mapper classify --snapshot page.html --format yaml --output result.yaml

  stricter_worklist: |
    section-mapper classify --snapshot page.json --min-confidence 0.7

  custom_catalog: |
    section-mapper catalog > catalog.yaml
    section-mapper classify --snapshot page.json --config catalog.yaml

  only_sections: |
    section-mapper classify --snapshot page.json --fields sections,stats

  save_and_inspect: |
    section-mapper classify --snapshot page.json --save
    section-mapper db runs
    section-mapper db show
    section-mapper db worklist

tiers:
  HIGH: "confidence >= 0.70, follow the archetype template"
  MEDIUM: "confidence >= 0.50, content signals take precedence"
  LOW: "confidence >= 0.30, verify against section content"
  NONE: "below 0.30, relabeled to the fallback archetype (original kept)"

methods:
  tag: 0.90
  role: 0.85
  heading-keyword: 0.75
  text-content-keyword: 0.70
  position-after-nav: 0.60
  position-first: 0.50
  position-last: 0.50
  fallback: 0.30

worklist:
  - "Sections with confidence below min_confidence (default 0.5)"
  - "Independent of tiers: a MEDIUM section can be on the worklist"
  - "'section-mapper db worklist <run-id>' prints it as YAML"

run_invariants:
  - "Same snapshot bytes + same settings = same run ID"
  - "Section indices are kept after dedup, gaps are expected"

error_behavior:
  - "Invalid catalog config: exit before reading the snapshot"
  - "Unreadable or rootless snapshot: exit 1"
  - "Sparse pages never fail: zero sections is a valid result"
`
